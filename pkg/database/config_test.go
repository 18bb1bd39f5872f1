package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     3307,
		User:     "rentals",
		Password: "s3cret",
		Database: "rentals",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "rentals:s3cret@tcp(db.internal:3307)/rentals")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "multiStatements=true")
}

func TestDSNURLOverride(t *testing.T) {
	cfg := Config{URL: "root:pw@tcp(host:3306)/db?parseTime=true"}
	assert.Equal(t, "root:pw@tcp(host:3306)/db?parseTime=true", cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MYSQLHOST", "mysql.test")
	t.Setenv("MYSQLPORT", "3307")
	t.Setenv("MYSQLUSER", "svc")
	t.Setenv("MYSQLPASSWORD", "pw")
	t.Setenv("MYSQLDATABASE", "rent_test")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mysql.test", cfg.Host)
	assert.Equal(t, 3307, cfg.Port)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "rent_test", cfg.Database)
	assert.Equal(t, 10, cfg.MaxOpenConns)
}

func TestLoadConfigFromEnvBadPort(t *testing.T) {
	t.Setenv("MYSQLPORT", "not-a-port")
	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}
