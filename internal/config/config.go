// Package config loads the runtime settings of the route planner from the
// environment, after an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// Config aggregates application configuration values.
type Config struct {
	Network NetworkConfig
	Logging LoggingConfig
}

// NetworkConfig selects the generated network.
type NetworkConfig struct {
	Seed             int64
	Stations         int
	Centers          int
	RoadThreshold    float64
	CollisionRetries int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultSeed          = 42
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultEnvFile       = ".env"
)

// Load reads .env (if present) and then the environment, applying defaults
// taken from topology.DefaultConfig.
func Load() (Config, error) {
	if err := LoadEnvFile(defaultEnvFile); err != nil {
		return Config{}, err
	}

	return FromEnv()
}

// LoadEnvFile exports the variables of an env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (Config, error) {
	def := topology.DefaultConfig()
	cfg := Config{
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	var err error
	if cfg.Network.Seed, err = parseInt64("ROUTE_SEED", defaultSeed); err != nil {
		return Config{}, err
	}
	if cfg.Network.Stations, err = parseInt("ROUTE_STATIONS", def.Stations); err != nil {
		return Config{}, err
	}
	if cfg.Network.Centers, err = parseInt("ROUTE_CENTERS", def.Centers); err != nil {
		return Config{}, err
	}
	if cfg.Network.CollisionRetries, err = parseInt("ROUTE_COLLISION_RETRIES", def.CollisionRetries); err != nil {
		return Config{}, err
	}
	if cfg.Network.RoadThreshold, err = parseFloat("ROUTE_ROAD_THRESHOLD", def.RoadThreshold); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Topology overlays the network settings on topology.DefaultConfig.
// The result is not validated; topology.Build does that.
func (c Config) Topology() topology.Config {
	t := topology.DefaultConfig()
	t.Stations = c.Network.Stations
	t.Centers = c.Network.Centers
	t.RoadThreshold = c.Network.RoadThreshold
	t.CollisionRetries = c.Network.CollisionRetries
	return t
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
