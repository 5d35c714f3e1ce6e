package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Rings)
	assert.Equal(t, "growing-tree-random", cfg.Algorithm)
	assert.Equal(t, "file", cfg.SnapshotStore)
	assert.True(t, cfg.Rooms)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MAZE_RINGS", "12")
	t.Setenv("MAZE_SEED", "99")
	t.Setenv("MAZE_BRAID", "0.25")
	t.Setenv("MAZE_ROOMS", "false")
	t.Setenv("SNAPSHOT_STORE", "redis")
	t.Setenv("REDIS_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Rings)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.InDelta(t, 0.25, cfg.Braid, 1e-9)
	assert.False(t, cfg.Rooms)
	assert.Equal(t, "redis", cfg.SnapshotStore)
	assert.Equal(t, 60, cfg.RedisTTLSeconds)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("MAZE_RINGS", "many")
	t.Setenv("MAZE_ROOMS", "sometimes")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "MAZE_RINGS")
	assert.Contains(t, err.Error(), "MAZE_ROOMS")
	assert.Equal(t, 8, cfg.Rings, "bad values fall back to defaults")
}
