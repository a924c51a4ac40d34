package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
)

// SQLite-backed store mapping rounded coordinate keys to resolved
// city/state pairs. Keys are produced by domain.Coordinates.CacheKey, so
// identical rounded coordinates always hit the same row.
type SqliteGeocodeStore struct {
	DB *sql.DB
}

func NewSqliteGeocodeStore(db *sql.DB) *SqliteGeocodeStore {
	return &SqliteGeocodeStore{DB: db}
}

// Fetch the cached resolution for a coordinate key.
func (s *SqliteGeocodeStore) Get(ctx context.Context, key string) (domain.CityState, bool, error) {
	if s.DB == nil {
		return domain.CityState{}, false, errors.New("geocode store: db is nil")
	}

	q := `
	SELECT city, state
	FROM geocode_cache
	WHERE coord_key = ?;
	`

	var cs domain.CityState
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&cs.City, &cs.State)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CityState{}, false, nil
	}
	if err != nil {
		return domain.CityState{}, false, fmt.Errorf("get geocode store: query geocode_cache table: %w", err)
	}

	return cs, true, nil
}

// Store a coordinate key -> city/state mapping.
func (s *SqliteGeocodeStore) Put(ctx context.Context, key string, cs domain.CityState) error {
	if s.DB == nil {
		return errors.New("geocode store: db is nil")
	}

	if key == "" {
		return errors.New("insert geocode store: empty coordinate key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
		coord_key,
		city,
		state
	)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, cs.City, cs.State); err != nil {
		return fmt.Errorf("insert geocode store coord=%q: %w", key, err)
	}

	return nil
}
