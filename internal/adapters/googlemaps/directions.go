package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
	"net/http"
	"net/url"

	"github.com/twpayne/go-polyline"
)

const milesPerMeter = 0.000621371

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

// GetRoute implements ports.RoutingProvider against the Directions API.
// The overview polyline is decoded into the waypoint sequence the planner
// walks; total distance is converted from meters to miles.
func (c *Client) GetRoute(ctx context.Context, origin, destination string) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "googlemaps.GetRoute")(&err)

	if origin == "" || destination == "" {
		return ports.RouteResult{}, fmt.Errorf("get route: origin and destination must be non-empty")
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		q := url.Values{}
		q.Set("origin", origin)
		q.Set("destination", destination)
		q.Set("mode", "driving")
		return c.newRequest(ctx, "/maps/api/directions/json", q)
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: decode directions response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf(
			"get route: %q -> %q status=%s message=%q: %w",
			origin, destination, decoded.Status, decoded.ErrorMessage, ports.ErrRouteUnavailable,
		)
	}

	route := decoded.Routes[0]
	if len(route.Legs) == 0 || route.OverviewPolyline.Points == "" {
		return ports.RouteResult{}, fmt.Errorf(
			"get route: %q -> %q missing legs or polyline: %w",
			origin, destination, ports.ErrRouteUnavailable,
		)
	}
	leg := route.Legs[0]

	coords, _, err := polyline.DecodeCoords([]byte(route.OverviewPolyline.Points))
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: decode overview polyline: %w", err)
	}

	waypoints := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		waypoints = append(waypoints, domain.Coordinates{Lat: c[0], Lon: c[1]})
	}

	return ports.RouteResult{
		TotalDistanceMiles:  float64(leg.Distance.Value) * milesPerMeter,
		EstimatedTravelTime: leg.Duration.Text,
		Waypoints:           waypoints,
	}, nil
}
