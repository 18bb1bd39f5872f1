package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// Raw DSN override; when set it wins over the individual fields.
	URL string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN builds the go-sql-driver connection string. parseTime is required so
// that DATETIME columns scan into time.Time for Ent.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}

// LoadConfigFromEnv loads database configuration from environment variables.
// MYSQL_URL takes precedence; otherwise the MYSQLHOST family is used.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("MYSQLPORT", "3306"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MYSQLPORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault("MYSQLHOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("MYSQLUSER", "root"),
		Password:        os.Getenv("MYSQLPASSWORD"),
		Database:        getEnvOrDefault("MYSQLDATABASE", "rentals"),
		URL:             os.Getenv("MYSQL_URL"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
