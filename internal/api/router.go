package api

import (
	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	routing ports.RoutingProvider,
	stations ports.StationSource,
	geo *services.GeoCache,
	planner services.PlannerConfig,
) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Routing:  routing,
		Stations: stations,
		Geo:      geo,
		Planner:  planner,
	}
	locationHandler := &handlers.LocationHandler{Stations: stations}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/trips", tripHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
