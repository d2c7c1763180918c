package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bookforge/bookforge/internal/config"
)

// Connection wraps the single database handle a run works against.
type Connection struct {
	DB       *sql.DB
	Provider string
}

// Open resolves the driver for the configured provider, opens the
// connection and verifies it with a ping.
func Open(cfg *config.Config) (*Connection, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverFor(cfg.Database.Provider), dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:       db,
		Provider: cfg.Database.Provider,
	}, nil
}

func driverFor(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "pgx"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return "mysql"
	}
}

func (c *Connection) Close() error {
	return c.DB.Close()
}
