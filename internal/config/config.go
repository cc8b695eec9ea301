// Package config loads CLI and server configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backend names accepted by Config.Store.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds the runtime configuration for the automata CLI and server.
type Config struct {
	// Store selects the snapshot backend: file, redis, or sqlite.
	Store string `env:"AUTOMATA_STORE" envDefault:"file"`

	FilePath string `env:"AUTOMATA_FILE_PATH" envDefault:".automata/machines"`

	RedisAddr     string `env:"AUTOMATA_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"AUTOMATA_REDIS_PASSWORD"`
	RedisDB       int    `env:"AUTOMATA_REDIS_DB" envDefault:"0"`

	SQLitePath string `env:"AUTOMATA_SQLITE_PATH" envDefault:".automata/machines.db"`

	HTTPPort string `env:"AUTOMATA_PORT" envDefault:"8080"`
	LogLevel string `env:"AUTOMATA_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Store {
	case StoreFile, StoreRedis, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
	return cfg, nil
}
