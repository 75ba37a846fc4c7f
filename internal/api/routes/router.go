package routes

import (
	"net/http"

	"github.com/zatekoja/hospital-locator/backend/internal/api/handlers"
	"github.com/zatekoja/hospital-locator/backend/internal/api/middleware"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler   *handlers.HospitalHandler
	directionsHandler *handlers.DirectionsHandler
	geocodingHandler  *handlers.GeocodingHandler
	locationHandler   *handlers.LocationHandler

	metricsHandler  http.Handler
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
	allowedOrigins  []string
}

// NewRouter creates a new router. cacheMiddleware and metricsHandler may be nil.
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	directionsHandler *handlers.DirectionsHandler,
	geocodingHandler *handlers.GeocodingHandler,
	locationHandler *handlers.LocationHandler,
	metricsHandler http.Handler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		hospitalHandler:   hospitalHandler,
		directionsHandler: directionsHandler,
		geocodingHandler:  geocodingHandler,
		locationHandler:   locationHandler,
		metricsHandler:    metricsHandler,
		cacheMiddleware:   cacheMiddleware,
		metrics:           metrics,
		allowedOrigins:    allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	if r.metricsHandler != nil {
		r.mux.Handle("GET /metrics", r.metricsHandler)
	}

	// Hospital directory
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("POST /api/hospitals", r.hospitalHandler.CreateHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/services", r.hospitalHandler.ListServices)

	// Mapping-provider shaped endpoints
	r.mux.HandleFunc("GET /api/mapbox/directions", r.directionsHandler.GetDirections)
	r.mux.HandleFunc("POST /api/mapbox/directions", r.directionsHandler.BatchDirections)
	r.mux.HandleFunc("GET /api/mapbox/geocoding", r.geocodingHandler.Geocode)

	r.mux.HandleFunc("GET /api/location", r.locationHandler.ResolveLocation)

	// Apply middleware in reverse order (last middleware wraps first).
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	// Logging wraps the cache so replayed responses are logged too
	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.SentryMiddleware(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
