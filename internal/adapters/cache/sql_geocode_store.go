package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

// Postgres-backed variant of the geocode store.
type SQLGeocodeStore struct {
	DB *sql.DB
}

func NewSQLGeocodeStore(db *sql.DB) *SQLGeocodeStore {
	return &SQLGeocodeStore{DB: db}
}

// Fetch the cached resolution for a coordinate key.
func (s *SQLGeocodeStore) Get(ctx context.Context, key string) (_ domain.CityState, _ bool, err error) {
	defer obs.Time(ctx, "geocode.store.Get")(&err)

	if s.DB == nil {
		return domain.CityState{}, false, errors.New("geocode store: db is nil")
	}

	q := `
	SELECT city, state
	FROM geocode_cache
	WHERE coord_key = $1;
	`

	var cs domain.CityState
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&cs.City, &cs.State)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CityState{}, false, nil
	}
	if err != nil {
		return domain.CityState{}, false, fmt.Errorf("get geocode store: query geocode_cache table: %w", err)
	}

	return cs, true, nil
}

// Store a coordinate key -> city/state mapping.
func (s *SQLGeocodeStore) Put(ctx context.Context, key string, cs domain.CityState) error {
	if s.DB == nil {
		return errors.New("geocode store: db is nil")
	}

	if key == "" {
		return errors.New("insert geocode store: empty coordinate key")
	}

	q := `
	INSERT INTO geocode_cache (coord_key, city, state)
	VALUES ($1, $2, $3)
	ON CONFLICT (coord_key) DO UPDATE
	SET city = EXCLUDED.city,
		state = EXCLUDED.state;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, cs.City, cs.State); err != nil {
		return fmt.Errorf("insert geocode store coord=%q: %w", key, err)
	}

	return nil
}
