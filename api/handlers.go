package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rides-api/geohash"
	"rides-api/models"
	"rides-api/validators"
)

// maxBodyBytes caps the create payload.
const maxBodyBytes = 100 << 10

// RideStore is the persistence the handlers need.
type RideStore interface {
	Create(ctx context.Context, ride models.NewRide) (int64, error)
	FindByID(ctx context.Context, id string) ([]models.Ride, error)
	FindPage(ctx context.Context, limit, offset int64) ([]models.Ride, error)
}

// Handler carries everything the ride endpoints share for the lifetime of
// the process.
type Handler struct {
	rides    RideStore
	logger   *slog.Logger
	pageSize int64
}

func NewHandler(rides RideStore, logger *slog.Logger, pageSize int) *Handler {
	return &Handler{
		rides:    rides,
		logger:   logger,
		pageSize: int64(pageSize),
	}
}

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Healthy"))
}

// validateRide applies the payload rules in order and returns the message
// of the first one that fails.
func validateRide(body models.RideBody) (models.NewRide, string) {
	if validators.LatitudeOutOfRange(body.StartLat) || validators.LongitudeOutOfRange(body.StartLong) {
		return models.NewRide{}, "Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	}
	if validators.LatitudeOutOfRange(body.EndLat) || validators.LongitudeOutOfRange(body.EndLong) {
		return models.NewRide{}, "End latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	}
	if validators.IsBlankOrNonString(body.RiderName) {
		return models.NewRide{}, "Rider name must be a non empty string"
	}
	if validators.IsBlankOrNonString(body.DriverName) {
		return models.NewRide{}, "Driver name must be a non empty string"
	}
	if validators.IsBlankOrNonString(body.DriverVehicle) {
		return models.NewRide{}, "Driver vehicle must be a non empty string"
	}

	ride := models.NewRide{
		RiderName:     body.RiderName.(string),
		DriverName:    body.DriverName.(string),
		DriverVehicle: body.DriverVehicle.(string),
	}
	ride.StartLat, _ = validators.Number(body.StartLat)
	ride.StartLong, _ = validators.Number(body.StartLong)
	ride.EndLat, _ = validators.Number(body.EndLat)
	ride.EndLong, _ = validators.Number(body.EndLong)
	return ride, ""
}

// CreateRide handles POST /rides
func (h *Handler) CreateRide(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	var body models.RideBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		logger.Debug("decoding ride payload", "error", err)
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ValidationError, "Invalid request payload"))
		return
	}

	ride, msg := validateRide(body)
	if msg != "" {
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ValidationError, msg))
		return
	}

	id, err := h.rides.Create(r.Context(), ride)
	if err != nil {
		logger.Error("creating ride", "error", err)
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ServerError, unknownErrorMessage))
		return
	}

	rides, err := h.rides.FindByID(r.Context(), strconv.FormatInt(id, 10))
	if err != nil {
		logger.Error("reading created ride", "ride_id", id, "error", err)
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ServerError, unknownErrorMessage))
		return
	}

	logger.Info("ride created",
		"ride_id", id,
		"start_cell", geohash.Cell(ride.StartLat, ride.StartLong),
		"end_cell", geohash.Cell(ride.EndLat, ride.EndLong),
	)
	writeJSON(w, http.StatusOK, rides)
}

// ListRides handles GET /rides?page=N
func (h *Handler) ListRides(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	page, ok := parsePage(r.URL.Query()["page"])
	if !ok {
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ValidationError, invalidPageMessage))
		return
	}

	if page-1 > math.MaxInt64/h.pageSize {
		writeError(w, http.StatusNotFound, NewResponseError(logger, RidesNotFoundError, notFoundMessage))
		return
	}

	rides, err := h.rides.FindPage(r.Context(), h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		logger.Error("listing rides", "page", page, "error", err)
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ServerError, unknownErrorMessage))
		return
	}
	if len(rides) == 0 {
		writeError(w, http.StatusNotFound, NewResponseError(logger, RidesNotFoundError, notFoundMessage))
		return
	}

	writeJSON(w, http.StatusOK, rides)
}

// parsePage reads the page query values. Missing or empty means page 1.
func parsePage(values []string) (int64, bool) {
	switch {
	case len(values) == 0 || (len(values) == 1 && values[0] == ""):
		return 1, true
	case len(values) > 1:
		return 0, false
	}
	page, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// GetRide handles GET /rides/{id}
func (h *Handler) GetRide(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	id := mux.Vars(r)["id"]

	rides, err := h.rides.FindByID(r.Context(), id)
	if err != nil {
		logger.Error("fetching ride", "ride_id", id, "error", err)
		writeError(w, http.StatusBadRequest, NewResponseError(logger, ServerError, unknownErrorMessage))
		return
	}
	if len(rides) == 0 {
		writeError(w, http.StatusNotFound, NewResponseError(logger, RidesNotFoundError, notFoundMessage))
		return
	}

	writeJSON(w, http.StatusOK, rides)
}
