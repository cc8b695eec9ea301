package config_test

import (
	"testing"

	"github.com/aretw0/automata/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreFile, cfg.Store)
	assert.Equal(t, ".automata/machines", cfg.FilePath)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AUTOMATA_STORE", config.StoreRedis)
	t.Setenv("AUTOMATA_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("AUTOMATA_REDIS_DB", "3")
	t.Setenv("AUTOMATA_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("AUTOMATA_STORE", "etcd")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
