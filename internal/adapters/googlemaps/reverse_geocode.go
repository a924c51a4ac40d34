package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"fuel-route-service/internal/domain"
	"net/http"
	"net/url"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Reverse implements ports.GeocodingProvider against the Geocoding API.
// City comes from the locality component, state from the 2-letter
// administrative_area_level_1 short name. Errors here are expected and
// recovered by the GeoCache as an unresolved entry.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (domain.CityState, error) {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		q := url.Values{}
		q.Set("latlng", fmt.Sprintf("%f,%f", lat, lon))
		return c.newRequest(ctx, "/maps/api/geocode/json", q)
	})
	if err != nil {
		return domain.CityState{}, fmt.Errorf("reverse geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.CityState{}, fmt.Errorf("reverse geocode: decode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.CityState{}, fmt.Errorf("reverse geocode: (%f, %f) status=%s", lat, lon, decoded.Status)
	}

	var city, state string
	for _, comp := range decoded.Results[0].AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				city = comp.LongName
			case "administrative_area_level_1":
				state = comp.ShortName
			}
		}
	}

	if city == "" || state == "" {
		return domain.CityState{}, fmt.Errorf("reverse geocode: (%f, %f) has no locality/state components", lat, lon)
	}

	return domain.NormalizeCityState(city, state), nil
}
