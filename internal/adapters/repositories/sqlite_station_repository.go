package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
)

// SQLite-backed implementation of the StationSource port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return all stations stored in the database, in stable catalog order.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		truckstop_id,
		name,
		address,
		city,
		state,
		price_per_gallon,
		lat,
		lon
	FROM stations
	ORDER BY state, city, truckstop_id, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0, 256)
	for rows.Next() {
		var st domain.Station
		var price, lat, lon sql.NullFloat64

		if err := rows.Scan(&st.TruckstopID, &st.Name, &st.Address, &st.City, &st.State, &price, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}

		if price.Valid {
			st.PricePerGallon = price.Float64
		}
		if lat.Valid && lon.Valid {
			st.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
