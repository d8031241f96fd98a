package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"rides-api/config"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Open connects to the store named by cfg.Driver and verifies the
// connection.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	var (
		driverName string
		dsn        string
	)
	switch cfg.Driver {
	case "sqlite":
		driverName, dsn = "sqlite", cfg.DSN
	case "postgres":
		driverName, dsn = "postgres", cfg.PostgresDSN()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driverName == "sqlite" {
		// SQLite serializes writers itself, and every new connection to
		// ":memory:" would be a fresh empty database.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", driverName, err)
	}
	return db, nil
}
