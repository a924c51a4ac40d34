package handlers

import (
	"context"
	"encoding/json"
	"fuel-route-service/internal/adapters/googlemaps"
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticStationSource struct{ stations []domain.Station }

func (s *staticStationSource) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stations, nil
}

// straight 200-mile route with one station city at the end.
func testTripHandler() *TripHandler {
	const milesPerLatDegree = 3958.8 * math.Pi / 180

	wps := make([]domain.Coordinates, 11)
	for i := range wps {
		wps[i] = domain.Coordinates{Lat: 30 + float64(i)*20/milesPerLatDegree, Lon: -95}
	}
	cum, err := services.CumulativeDistances(wps)
	if err != nil {
		panic(err)
	}

	routing := &googlemaps.MockRoutingProvider{Routes: map[string]ports.RouteResult{
		"Houston, TX|Endtown, TX": {
			TotalDistanceMiles:  cum[len(cum)-1],
			EstimatedTravelTime: "3 hours",
			Waypoints:           wps,
		},
	}}

	geo := services.NewGeoCache(&googlemaps.MockGeocoder{ByKey: map[string]domain.CityState{
		wps[10].CacheKey(): {City: "endtown", State: "TX"},
	}}, nil)

	return &TripHandler{
		Routing: routing,
		Stations: &staticStationSource{stations: []domain.Station{
			{Name: "ENDTOWN STOP", Address: "I-45", City: "endtown", State: "TX", PricePerGallon: 3.00},
		}},
		Geo: geo,
		Planner: services.PlannerConfig{
			VehicleRangeMiles:       450,
			MilesPerGallon:          10,
			FallbackPricePerGallon:  3.50,
			PrefilterProximityMiles: 100,
		},
	}
}

func doPlan(t *testing.T, h *TripHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestTripHandlerPlan(t *testing.T) {
	rec := doPlan(t, testTripHandler(), `{"start":"Houston, TX","finish":"Endtown, TX"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.TripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TotalDistanceMiles < 199.5 || res.TotalDistanceMiles > 200.5 {
		t.Fatalf("total distance = %f, want ~200", res.TotalDistanceMiles)
	}
	if len(res.FuelStops) != 1 {
		t.Fatalf("fuel stops = %d, want 1", len(res.FuelStops))
	}
	if res.FuelStops[0].City != "Endtown" {
		t.Fatalf("city = %q, want title-cased Endtown", res.FuelStops[0].City)
	}
	if res.FuelStops[0].FuelNeededGallons < 19.5 || res.FuelStops[0].FuelNeededGallons > 20.5 {
		t.Fatalf("gallons = %f, want ~20", res.FuelStops[0].FuelNeededGallons)
	}
}

func TestTripHandlerMissingFields(t *testing.T) {
	rec := doPlan(t, testTripHandler(), `{"start":"Houston, TX"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTripHandlerInvalidBody(t *testing.T) {
	rec := doPlan(t, testTripHandler(), `{"start": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTripHandlerNoRoute(t *testing.T) {
	rec := doPlan(t, testTripHandler(), `{"start":"Houston, TX","finish":"Honolulu, HI"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestTripHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()
	testTripHandler().Plan(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
