package main

import (
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and imports the fuel price CSV.
// Run once before pointing the server at DATABASE_URL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	csvPath := config.Get("STATIONS_CSV_PATH", "data/fuel-prices.csv")
	log.Printf("Importing stations from %s...", csvPath)
	if err := repositories.SeedPostgresFromCSV(pg, csvPath); err != nil {
		log.Fatalf("station import failed: %v", err)
	}
	log.Println("Stations imported.")
}
