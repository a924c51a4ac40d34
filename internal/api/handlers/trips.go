package handlers

import (
	"encoding/json"
	"errors"
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

type TripHandler struct {
	Routing  ports.RoutingProvider
	Stations ports.StationSource
	Geo      *services.GeoCache
	Planner  services.PlannerConfig
}

// Plan handles POST /trips: it runs one planning call for the requested
// start/finish pair and maps the planning error taxonomy to HTTP statuses.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.Start)
	finish := strings.TrimSpace(req.Finish)
	if start == "" || finish == "" {
		writeError(w, r, http.StatusBadRequest, "start and finish are required")
		return
	}

	svcReq := services.PlanTripRequest{Start: start, Finish: finish}
	plan, err := services.PlanTrip(r.Context(), svcReq, h.Planner, h.Routing, h.Stations, h.Geo)
	if err != nil {
		status, msg := planErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("plan trip failed: %v", err)
			msg = "internal server error"
		}
		writeError(w, r, status, msg)
		return
	}

	res := dto.TripResponse{
		TotalDistanceMiles:  round2(plan.TotalDistanceMiles),
		EstimatedTravelTime: plan.EstimatedTravelTime,
		FuelStops:           make([]dto.FuelStopResponse, 0, len(plan.Stops)),
		TotalFuelCost:       plan.TotalFuelCost,
		Warnings:            plan.Warnings,
	}
	for _, s := range plan.Stops {
		res.FuelStops = append(res.FuelStops, dto.FuelStopResponse{
			Name:               s.Station.Name,
			Address:            s.Station.Address,
			City:               titleCaser.String(s.Station.City),
			State:              s.Station.State,
			FuelPricePerGallon: s.PricePerGallon,
			FuelNeededGallons:  s.FuelGallons,
			TotalCost:          s.Cost,
			MilesTraveled:      round2(s.MilesFromOrigin),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// planErrorStatus maps fatal planning errors to response statuses. Anything
// outside the known taxonomy is a 500.
func planErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrRouteUnavailable):
		return http.StatusUnprocessableEntity, "no route found between start and finish"
	case errors.Is(err, services.ErrInsufficientWaypoints):
		return http.StatusUnprocessableEntity, "route has too few waypoints to plan"
	case errors.Is(err, services.ErrNoStationNearOrigin):
		return http.StatusUnprocessableEntity, "no fuel station reachable from the route origin"
	case errors.Is(err, services.ErrNoUsableStations):
		return http.StatusUnprocessableEntity, "no usable fuel stations near the route"
	case errors.Is(err, services.ErrNoReachableStation):
		return http.StatusUnprocessableEntity, "no fuel station reachable for part of the route"
	default:
		return http.StatusInternalServerError, ""
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
