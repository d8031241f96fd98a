package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sqliteRidesSchema = `
	CREATE TABLE IF NOT EXISTS Rides
	(
	rideID INTEGER PRIMARY KEY AUTOINCREMENT,
	startLat DECIMAL NOT NULL,
	startLong DECIMAL NOT NULL,
	endLat DECIMAL NOT NULL,
	endLong DECIMAL NOT NULL,
	riderName TEXT NOT NULL,
	driverName TEXT NOT NULL,
	driverVehicle TEXT NOT NULL,
	created DATETIME default CURRENT_TIMESTAMP
	)
`

const postgresRidesSchema = `
	CREATE TABLE IF NOT EXISTS Rides
	(
	rideID BIGSERIAL PRIMARY KEY,
	startLat DOUBLE PRECISION NOT NULL,
	startLong DOUBLE PRECISION NOT NULL,
	endLat DOUBLE PRECISION NOT NULL,
	endLong DOUBLE PRECISION NOT NULL,
	riderName TEXT NOT NULL,
	driverName TEXT NOT NULL,
	driverVehicle TEXT NOT NULL,
	created TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// BuildSchemas creates the Rides table if it does not exist yet.
func BuildSchemas(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteRidesSchema
	if db.DriverName() == "postgres" {
		schema = postgresRidesSchema
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating Rides table: %w", err)
	}
	return nil
}
