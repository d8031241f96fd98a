package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"rides-api/config"
	"rides-api/models"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, config.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := BuildSchemas(ctx, db); err != nil {
		t.Fatal(err)
	}
	return db
}

func testRide(name string) models.NewRide {
	return models.NewRide{
		StartLat:      1.5,
		StartLong:     -73.25,
		EndLat:        -2,
		EndLong:       100,
		RiderName:     name,
		DriverName:    "driver " + name,
		DriverVehicle: "vehicle " + name,
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{Driver: "oracle"})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("Open() error = %v, want ErrUnknownDriver", err)
	}
}

func TestBuildSchemasIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := BuildSchemas(context.Background(), db); err != nil {
		t.Fatalf("second BuildSchemas: %v", err)
	}
}

func TestCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository(openTestDB(t))

	want := testRide("alice")
	id, err := repo.Create(ctx, want)
	if err != nil {
		t.Fatal(err)
	}
	if id < 1 {
		t.Fatalf("Create() id = %d", id)
	}

	rides, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rides) != 1 {
		t.Fatalf("FindByID() returned %d rides, want 1", len(rides))
	}

	got := rides[0]
	if got.RideID != id {
		t.Errorf("RideID = %d, want %d", got.RideID, id)
	}
	if got.StartLat != want.StartLat || got.StartLong != want.StartLong ||
		got.EndLat != want.EndLat || got.EndLong != want.EndLong {
		t.Errorf("coordinates = %+v, want %+v", got, want)
	}
	if got.RiderName != want.RiderName || got.DriverName != want.DriverName ||
		got.DriverVehicle != want.DriverVehicle {
		t.Errorf("names = %+v, want %+v", got, want)
	}
	if got.Created == "" {
		t.Error("Created is empty")
	}
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository(openTestDB(t))

	var last int64
	for _, name := range []string{"a", "b", "c"} {
		id, err := repo.Create(ctx, testRide(name))
		if err != nil {
			t.Fatal(err)
		}
		if id <= last {
			t.Fatalf("id %d not greater than %d", id, last)
		}
		last = id
	}
}

func TestFindByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository(openTestDB(t))

	if _, err := repo.Create(ctx, testRide("a")); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"999999", "abc", "1 OR 1=1", "1; DROP TABLE Rides"} {
		rides, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("FindByID(%q): %v", id, err)
		}
		if len(rides) != 0 {
			t.Errorf("FindByID(%q) returned %d rides", id, len(rides))
		}
	}

	// The table must have survived the injection attempts.
	if rides, err := repo.FindByID(ctx, "1"); err != nil || len(rides) != 1 {
		t.Fatalf("FindByID(1) = %v, %v", rides, err)
	}
}

func TestFindPage(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository(openTestDB(t))

	for i := 0; i < 5; i++ {
		if _, err := repo.Create(ctx, testRide("r")); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		limit, offset int64
		wantIDs       []int64
	}{
		{2, 0, []int64{1, 2}},
		{2, 2, []int64{3, 4}},
		{2, 4, []int64{5}},
		{2, 6, nil},
		{10, 0, []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		rides, err := repo.FindPage(ctx, tt.limit, tt.offset)
		if err != nil {
			t.Fatal(err)
		}
		if len(rides) != len(tt.wantIDs) {
			t.Errorf("FindPage(%d, %d) returned %d rides, want %d",
				tt.limit, tt.offset, len(rides), len(tt.wantIDs))
			continue
		}
		for i, ride := range rides {
			if ride.RideID != tt.wantIDs[i] {
				t.Errorf("FindPage(%d, %d)[%d].RideID = %d, want %d",
					tt.limit, tt.offset, i, ride.RideID, tt.wantIDs[i])
			}
		}
	}
}

func TestRepositoryClosedStore(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewRideRepository(db)
	db.Close()

	if _, err := repo.Create(ctx, testRide("a")); err == nil {
		t.Error("Create on closed store succeeded")
	}
	if _, err := repo.FindByID(ctx, "1"); err == nil {
		t.Error("FindByID on closed store succeeded")
	}
	if _, err := repo.FindPage(ctx, 10, 0); err == nil {
		t.Error("FindPage on closed store succeeded")
	}
}
