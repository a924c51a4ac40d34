// Package googlemaps implements the RoutingProvider and GeocodingProvider
// ports against the Google Maps Directions and Geocoding web APIs.
package googlemaps

import (
	"errors"
	"net/http"
	"time"
)

// Client coordinates external Google Maps calls with a bounded timeout and
// retry/backoff on transient failures. Safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}, nil
}
