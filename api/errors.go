package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorCode string

const (
	ValidationError     ErrorCode = "VALIDATION_ERROR"
	ServerError         ErrorCode = "SERVER_ERROR"
	RidesNotFoundError  ErrorCode = "RIDES_NOT_FOUND_ERROR"
	unknownErrorMessage           = "Unknown error"
	notFoundMessage               = "Could not find any rides"
	invalidPageMessage            = "Page must be an integer of value 1 or higher"
)

// ResponseError is the body of every failed request.
type ResponseError struct {
	ErrorCode ErrorCode `json:"error_code"`
	Message   string    `json:"message"`
}

// NewResponseError builds a ResponseError and logs it.
func NewResponseError(logger *slog.Logger, code ErrorCode, message string) ResponseError {
	e := ResponseError{ErrorCode: code, Message: message}
	logger.Error(string(e.ErrorCode) + " - " + e.Message)
	return e
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, e ResponseError) {
	writeJSON(w, status, e)
}
