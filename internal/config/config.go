// Package config loads application configuration from a YAML file with
// environment overrides, and validates it with struct tags. The planner
// constants (vehicle range, fuel economy, fallback price, prefilter
// proximity) are configuration, never hardcoded in planning code.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PlannerConfig struct {
	VehicleRangeMiles       float64 `yaml:"vehicle_range_miles" validate:"gt=0"`
	MilesPerGallon          float64 `yaml:"miles_per_gallon" validate:"gt=0"`
	FallbackPricePerGallon  float64 `yaml:"fallback_price_per_gallon" validate:"gt=0"`
	PrefilterProximityMiles float64 `yaml:"prefilter_proximity_miles" validate:"gt=0"`
	StrictMidRoute          bool    `yaml:"strict_mid_route"`
}

type StorageConfig struct {
	SqlitePath string `yaml:"sqlite_path"`
	CSVPath    string `yaml:"csv_path"`
}

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Planner PlannerConfig `yaml:"planner"`
	Storage StorageConfig `yaml:"storage"`
}

// Defaults match the original assessment constants.
func defaults() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: "8080"},
		Planner: PlannerConfig{
			VehicleRangeMiles:       500,
			MilesPerGallon:          10,
			FallbackPricePerGallon:  3.50,
			PrefilterProximityMiles: 100,
		},
		Storage: StorageConfig{
			SqlitePath: "data/app.db",
			CSVPath:    "data/fuel-prices.csv",
		},
	}
}

// Load reads the config file at path (CONFIG_PATH or config.yml when empty)
// and validates it. A missing file yields the defaults.
func Load(path string) (AppConfig, error) {
	if path == "" {
		path = Get("CONFIG_PATH", "config.yml")
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return AppConfig{}, fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	v := validator.New()
	if err := v.Struct(cfg.Planner); err != nil {
		return AppConfig{}, fmt.Errorf("load config: validate planner: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	return cfg, nil
}

// Get returns the environment variable value, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
