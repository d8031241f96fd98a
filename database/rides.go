package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rides-api/models"
)

// Lower case aliases give SQLite and Postgres the same column names.
const rideColumns = `rideID AS rideid, startLat AS startlat, startLong AS startlong,
	endLat AS endlat, endLong AS endlong, riderName AS ridername,
	driverName AS drivername, driverVehicle AS drivervehicle, created`

// RideRepository runs the ride queries against a store handle.
type RideRepository struct {
	db *sqlx.DB
}

func NewRideRepository(db *sqlx.DB) *RideRepository {
	return &RideRepository{db: db}
}

// Create inserts a ride and returns the id assigned by the store.
func (r *RideRepository) Create(ctx context.Context, ride models.NewRide) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(
		`INSERT INTO Rides (startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING rideID`),
		ride.StartLat, ride.StartLong, ride.EndLat, ride.EndLong,
		ride.RiderName, ride.DriverName, ride.DriverVehicle,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting ride: %w", err)
	}
	return id, nil
}

// FindByID returns the rides whose id, in text form, equals id. The result
// holds at most one ride.
func (r *RideRepository) FindByID(ctx context.Context, id string) ([]models.Ride, error) {
	rides := []models.Ride{}
	err := r.db.SelectContext(ctx, &rides, r.db.Rebind(
		`SELECT `+rideColumns+` FROM Rides WHERE CAST(rideID AS TEXT) = ?`), id)
	if err != nil {
		return nil, fmt.Errorf("selecting ride %q: %w", id, err)
	}
	return rides, nil
}

// FindPage returns up to limit rides ordered by ascending id, skipping the
// first offset rides.
func (r *RideRepository) FindPage(ctx context.Context, limit, offset int64) ([]models.Ride, error) {
	rides := []models.Ride{}
	err := r.db.SelectContext(ctx, &rides, r.db.Rebind(
		`SELECT `+rideColumns+` FROM Rides ORDER BY rideID ASC LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("selecting rides page: %w", err)
	}
	return rides, nil
}
