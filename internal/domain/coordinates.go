package domain

import "fmt"

// Immutable geographic coordinates in float degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CacheKey rounds to 4 decimal places (~11 m) so nearby polyline samples
// share one reverse-geocode resolution.
func (c Coordinates) CacheKey() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
