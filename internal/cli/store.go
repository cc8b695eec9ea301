// Package cli implements the automata command-line behavior: the lollipop
// anomaly demo driver, snapshot rendering, and store wiring.
package cli

import (
	"fmt"

	"github.com/aretw0/automata/internal/adapters/file"
	"github.com/aretw0/automata/internal/adapters/redis"
	"github.com/aretw0/automata/internal/adapters/sqlite"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/pkg/ports"
)

// NewStore builds the snapshot store selected by the configuration.
// The returned closer releases the backend connection; it is a no-op for
// the file store.
func NewStore(cfg config.Config) (ports.SnapshotStore, func() error, error) {
	switch cfg.Store {
	case config.StoreFile:
		return file.New(cfg.FilePath), func() error { return nil }, nil
	case config.StoreRedis:
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return store, store.Close, nil
	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
