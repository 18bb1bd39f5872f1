package database

import (
	"testing"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/database"
	"github.com/megafartCc/FunpayAutomationV2-sub000/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external MySQL service container.
// In local dev: spins up a MySQL testcontainer.
// The per-test database and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
