package handlers

import (
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"log"
	"net/http"
)

type LocationHandler struct {
	Stations ports.StationSource
}

// List handles GET /locations: the distinct city/state pairs present in the
// station catalog, title-cased for display (dropdown population).
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stations, err := h.Stations.ListStations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	catalog := services.NewStationCatalog(stations)
	pairs := catalog.CityStates()

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(pairs))}
	for _, cs := range pairs {
		res.Locations = append(res.Locations, dto.LocationResponse{
			City:  titleCaser.String(cs.City),
			State: cs.State,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
