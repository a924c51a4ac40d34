package repositories

import (
	"encoding/csv"
	"fmt"
	"fuel-route-service/internal/domain"
	"os"
	"strconv"
	"strings"
)

// StationRow is one validated record from the fuel price CSV.
type StationRow struct {
	TruckstopID int
	Name        string
	Address     string
	City        string
	State       string
	Price       float64 // 0 when the row has no parseable price
	Lat, Lon    float64
	HasCoords   bool
}

// ReadStationsCSV parses the fuel price catalog. Expected columns (header
// names matched case-insensitively): OPIS Truckstop ID, Truckstop Name,
// Address, City, State, Retail Price, and optionally Latitude/Longitude.
// City/state normalization and price validation happen here, once, so
// planning code never re-checks records.
func ReadStationsCSV(path string) ([]StationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read stations csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read stations csv: parse %q: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("read stations csv: %q has no data rows", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"truckstop name", "address", "city", "state"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("read stations csv: %q missing required column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]StationRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		cs := domain.NormalizeCityState(field(rec, "city"), field(rec, "state"))
		name := field(rec, "truckstop name")
		if name == "" || !cs.Resolved() {
			return nil, fmt.Errorf("read stations csv: row %d: name, city and state are required", n+2)
		}

		row := StationRow{
			Name:    name,
			Address: field(rec, "address"),
			City:    cs.City,
			State:   cs.State,
		}

		row.TruckstopID, _ = strconv.Atoi(field(rec, "opis truckstop id"))
		if p, err := strconv.ParseFloat(field(rec, "retail price"), 64); err == nil && p > 0 {
			row.Price = p
		}

		lat, latErr := strconv.ParseFloat(field(rec, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(field(rec, "longitude"), 64)
		if latErr == nil && lonErr == nil {
			row.Lat, row.Lon, row.HasCoords = lat, lon, true
		}

		rows = append(rows, row)
	}

	return rows, nil
}
