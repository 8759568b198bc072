package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/cailurus/hearth/pkg/interceptors"
	"github.com/cailurus/hearth/pkg/observability"
)

// SetupRouter configures all routes and returns the HTTP handler
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/places/search", deps.PlaceHandler.SearchCities)
	mux.HandleFunc("GET /api/v1/places/geocode", deps.PlaceHandler.GeocodeCity)
	deps.Logger.Info("registered place routes",
		"search", "/api/v1/places/search",
		"geocode", "/api/v1/places/geocode")

	registerUtilityRoutes(mux, deps)

	var handler http.Handler = mux
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
		handler = interceptors.NewRateLimitMiddleware(limiter)(handler)
	}
	handler = observability.NewMetricsMiddleware(deps.Metrics)(handler)
	handler = interceptors.NewLoggingMiddleware(deps.Logger)(handler)
	handler = interceptors.NewRecoveryMiddleware(deps.Logger)(handler)
	handler = interceptors.NewRequestIDMiddleware("X-Request-ID")(handler)

	// Enable CORS for the dashboard frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.Config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	return corsHandler.Handler(handler)
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
