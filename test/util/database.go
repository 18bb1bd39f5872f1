// Package util provides test utilities and helper functions for database testing.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/go-sql-driver/mysql" // Register mysql driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
)

var (
	// Shared root DSN for all tests in local dev
	sharedRootDSN string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase creates an isolated test database and returns the raw
// components. Both CI and local dev use a per-test database for isolation:
// - CI: connects to an external MySQL service container via CI_DATABASE_URL
// - Local: uses a shared testcontainer (started once per package)
// Returns the ent client and database connection for wrapping by the caller.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()

	rootDSN := getOrCreateSharedDatabase(t)
	dbName := GenerateDatabaseName(t)

	// Connect without a database selected to create the per-test one.
	admin, err := stdsql.Open("mysql", rootDSN)
	require.NoError(t, err)

	_, err = admin.ExecContext(ctx, fmt.Sprintf(
		"CREATE DATABASE %s CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", dbName))
	require.NoError(t, err)
	t.Logf("Created test database: %s", dbName)
	_ = admin.Close()

	db, err := stdsql.Open("mysql", WithDatabase(rootDSN, dbName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.MySQL, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Create the schema directly from Ent definitions; tests don't run the
	// embedded SQL migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanup, err := stdsql.Open("mysql", rootDSN)
		if err == nil {
			_, dropErr := cleanup.ExecContext(context.Background(),
				fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName))
			if dropErr != nil {
				t.Logf("Warning: failed to drop database %s: %v", dbName, dropErr)
			}
			_ = cleanup.Close()
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// getOrCreateSharedDatabase returns a root DSN (no database selected) for the
// shared MySQL instance. In CI, uses CI_DATABASE_URL. In local dev, creates a
// shared testcontainer once per package.
func getOrCreateSharedDatabase(t *testing.T) string {
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external MySQL from CI_DATABASE_URL")
		return ciDatabaseURL
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared MySQL testcontainer for all tests")

		container, err := mysql.Run(ctx,
			"mysql:8.4",
			mysql.WithDatabase("test"),
			mysql.WithUsername("root"),
			mysql.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("ready for connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start mysql container: %w", err)
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			containerErr = fmt.Errorf("failed to get container host: %w", err)
			return
		}
		port, err := container.MappedPort(ctx, "3306/tcp")
		if err != nil {
			containerErr = fmt.Errorf("failed to get container port: %w", err)
			return
		}

		sharedRootDSN = fmt.Sprintf(
			"root:test@tcp(%s:%s)/?parseTime=true&multiStatements=true&charset=utf8mb4",
			host, port.Port())
		t.Logf("Shared container ready: %s:%s", host, port.Port())
	})

	require.NoError(t, containerErr, "Failed to setup shared test container")
	return sharedRootDSN
}

// GenerateDatabaseName creates a unique, MySQL-safe database name for the test.
// Format: test_<sanitized_test_name>_<random_hex>
func GenerateDatabaseName(t *testing.T) string {
	testName := strings.ToLower(t.Name())
	testName = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, testName)

	// MySQL identifiers cap at 64 characters.
	if len(testName) > 40 {
		testName = testName[:40]
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		t.Fatalf("failed to generate random bytes for database name: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", testName, hex.EncodeToString(randomBytes))
}

// WithDatabase rewrites a root DSN ("user:pass@tcp(host:port)/?params") to
// select the given database.
func WithDatabase(rootDSN, dbName string) string {
	slash := strings.LastIndex(rootDSN, "/")
	if slash < 0 {
		return rootDSN + "/" + dbName
	}
	rest := rootDSN[slash+1:]
	params := ""
	if q := strings.Index(rest, "?"); q >= 0 {
		params = rest[q:]
	}
	return rootDSN[:slash+1] + dbName + params
}
