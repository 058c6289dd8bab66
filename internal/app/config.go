package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for the Application. Values
// come from an optional YAML file and may be overridden by command-line
// flags when the application starts.
type Config struct {
	Port             int      `yaml:"port" validate:"gt=0"`
	Env              string   `yaml:"env" validate:"omitempty,oneof=development staging production test"`
	ApiKeys          []string `yaml:"api_keys"`
	RateLimit        int      `yaml:"rate_limit" validate:"gte=0"`
	SchedulePath     string   `yaml:"schedule_path" validate:"required"`
	GreenStationsPath string  `yaml:"green_stations_path"`
	BlueStationsPath  string  `yaml:"blue_stations_path"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Port:         4000,
		Env:          "development",
		ApiKeys:      []string{"test"},
		RateLimit:    100,
		SchedulePath: "routes_analysis.json",
	}
}

// LoadConfig reads and validates configuration from a YAML file, layered
// over the defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config file: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
