package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		truckstop_id INTEGER,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		price_per_gallon REAL,
		lat REAL,
		lon REAL,
		PRIMARY KEY (name, city, state)
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		coord_key TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		state TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stations_city_state
	ON stations(city, state);
	`

	statements := []string{
		createStationsQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the stations table from the fuel price CSV.
func SeedSqliteFromCSV(db *sql.DB, csvPath string) error {
	rows, err := ReadStationsCSV(csvPath)
	if err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO stations (
		truckstop_id,
		name,
		address,
		city,
		state,
		price_per_gallon,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		price := sql.NullFloat64{Float64: r.Price, Valid: r.Price > 0}
		lat := sql.NullFloat64{Float64: r.Lat, Valid: r.HasCoords}
		lon := sql.NullFloat64{Float64: r.Lon, Valid: r.HasCoords}

		if _, err := stmt.Exec(r.TruckstopID, r.Name, r.Address, r.City, r.State, price, lat, lon); err != nil {
			return fmt.Errorf("seed stations: insert station=%q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
