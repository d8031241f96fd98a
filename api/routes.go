package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"rides-api/ratelimit"
)

// RouterOptions tunes the HTTP surface around the handlers.
type RouterOptions struct {
	// Limiter throttles /rides and /api-docs per client. Nil disables it.
	Limiter ratelimit.Limiter
	// AccessLog receives Apache combined log lines. Nil disables them.
	AccessLog io.Writer
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.Health).Methods("GET")

	limited := router.NewRoute().Subrouter()
	if opts.Limiter != nil {
		limited.Use(rateLimit(opts.Limiter, h.logger))
	}

	// API documentation
	limited.HandleFunc("/api-docs", serveDocsPage).Methods("GET")
	limited.HandleFunc("/api-docs/swagger.yml", serveSwaggerDocument).Methods("GET")

	// Ride endpoints
	limited.HandleFunc("/rides", h.CreateRide).Methods("POST")
	limited.HandleFunc("/rides", h.ListRides).Methods("GET")
	limited.HandleFunc("/rides/{id}", h.GetRide).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)

	var handler http.Handler = withRequestID(h.logger, securityHeaders(cors(router)))
	if opts.AccessLog != nil {
		handler = handlers.CombinedLoggingHandler(opts.AccessLog, handler)
	}
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(h.logger.Handler(), slog.LevelError)),
	)(handler)
}
