package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilefill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
generator: hills
seed: 99
fill:
  max_tiles: 512
storage:
  backend: badger
events:
  nats_url: nats://127.0.0.1:4222
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hills", cfg.Generator)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 512, cfg.Fill.MaxTiles)
	assert.Equal(t, 128, cfg.Fill.HeightLimit, "unset keys keep defaults")
	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Events.NATSURL)
	assert.Equal(t, "tilefill.fills", cfg.Events.Subject)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "seed: 7\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "fill: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Fill.MaxTiles = 0
	cfg.Generator = "amplified"
	cfg.Storage.Backend = "s3"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tiles")
	assert.Contains(t, err.Error(), "amplified")
	assert.Contains(t, err.Error(), "s3")
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.Fill.MaxTiles = 64

	fromFile := DefaultConfig()
	fromFile.Seed = 2
	fromFile.Fill.MaxTiles = 1024
	fromFile.Generator = "hills"
	fromFile.Fill.Brush = "wool:14"

	Merge(cfg, fromFile, map[string]bool{"max-tiles": true})

	assert.Equal(t, int64(2), cfg.Seed)
	assert.Equal(t, 64, cfg.Fill.MaxTiles)
	assert.Equal(t, "hills", cfg.Generator)
	assert.Equal(t, "wool:14", cfg.Fill.Brush)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	log.Info("hidden")
	log.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}
