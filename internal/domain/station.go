package domain

import "strings"

// A fuel retailer from the price catalog.
//
// City and State are stored normalized (city lowercase-trimmed, state
// uppercase-trimmed) so lookups never re-normalize during planning.
// PricePerGallon <= 0 means the catalog had no price for this station;
// the planner substitutes the configured fallback. Coordinates are
// optional: most catalog rows carry only City/State granularity.
type Station struct {
	TruckstopID    int
	Name           string
	Address        string
	City           string
	State          string
	PricePerGallon float64
	Coordinates    *Coordinates
}

// CityState is a normalized (city, state) pair resolved from coordinates.
// The zero value is the "unresolved" sentinel.
type CityState struct {
	City  string
	State string
}

func (cs CityState) Resolved() bool { return cs.City != "" && cs.State != "" }

// Key returns the catalog lookup key for a normalized pair.
func (cs CityState) Key() string { return cs.City + "|" + cs.State }

// NormalizeCityState applies the catalog's normalization rules.
func NormalizeCityState(city, state string) CityState {
	return CityState{
		City:  strings.ToLower(strings.TrimSpace(city)),
		State: strings.ToUpper(strings.TrimSpace(state)),
	}
}

// LookupKey is the station's normalized city/state key.
func (s Station) LookupKey() string {
	return CityState{City: s.City, State: s.State}.Key()
}
