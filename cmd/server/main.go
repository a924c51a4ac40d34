package main

import (
	"database/sql"
	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/googlemaps"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Google Maps) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	stations, geoStore, closeDB, err := openStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	client, err := googlemaps.NewClient(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	// In-memory cache in front of the persistent store: a coordinate is
	// reverse-geocoded at most once per process.
	geo := services.NewGeoCache(client, geoStore)

	planner := services.PlannerConfig{
		VehicleRangeMiles:       cfg.Planner.VehicleRangeMiles,
		MilesPerGallon:          cfg.Planner.MilesPerGallon,
		FallbackPricePerGallon:  cfg.Planner.FallbackPricePerGallon,
		PrefilterProximityMiles: cfg.Planner.PrefilterProximityMiles,
		StrictMidRoute:          cfg.Planner.StrictMidRoute,
	}

	router := api.NewRouter(client, stations, geo, planner)

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStorage selects the storage backend: Postgres when DATABASE_URL is
// set, otherwise a local SQLite file that is initialized and seeded from
// the fuel price CSV on startup.
func openStorage(cfg config.AppConfig) (ports.StationSource, ports.GeocodeStore, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewSQLStationRepository(pg), cache.NewSQLGeocodeStore(pg), func() { pg.Close() }, nil
	}

	lite, err := db.OpenSqlite(cfg.Storage.SqlitePath)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := initAndSeed(lite, cfg.Storage.CSVPath); err != nil {
		lite.Close()
		return nil, nil, nil, err
	}

	return repositories.NewSqliteStationRepository(lite), cache.NewSqliteGeocodeStore(lite), func() { lite.Close() }, nil
}

func initAndSeed(sqliteDB *sql.DB, csvPath string) error {
	if err := repositories.InitSqliteSchema(sqliteDB); err != nil {
		return err
	}
	return repositories.SeedSqliteFromCSV(sqliteDB, csvPath)
}
