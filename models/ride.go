package models

// Ride is a persisted trip record. JSON keys follow the column names of the
// Rides table.
type Ride struct {
	RideID        int64   `json:"rideID" db:"rideid"`
	StartLat      float64 `json:"startLat" db:"startlat"`
	StartLong     float64 `json:"startLong" db:"startlong"`
	EndLat        float64 `json:"endLat" db:"endlat"`
	EndLong       float64 `json:"endLong" db:"endlong"`
	RiderName     string  `json:"riderName" db:"ridername"`
	DriverName    string  `json:"driverName" db:"drivername"`
	DriverVehicle string  `json:"driverVehicle" db:"drivervehicle"`
	Created       string  `json:"created" db:"created"`
}

// RideBody is the inbound create payload. Fields stay untyped until they
// pass validation.
type RideBody struct {
	StartLat      interface{} `json:"start_lat"`
	StartLong     interface{} `json:"start_long"`
	EndLat        interface{} `json:"end_lat"`
	EndLong       interface{} `json:"end_long"`
	RiderName     interface{} `json:"rider_name"`
	DriverName    interface{} `json:"driver_name"`
	DriverVehicle interface{} `json:"driver_vehicle"`
}

// NewRide holds validated values ready for insertion.
type NewRide struct {
	StartLat      float64
	StartLong     float64
	EndLat        float64
	EndLong       float64
	RiderName     string
	DriverName    string
	DriverVehicle string
}
