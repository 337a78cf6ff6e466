package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "decks.yaml", cfg.Simulator.DeckFile)
	assert.Equal(t, int64(1), cfg.Simulator.Seed)
	assert.Equal(t, 100, cfg.Simulator.MaxTurns)
	assert.False(t, cfg.Replay.Enabled)
	assert.Equal(t, "replays", cfg.Replay.Directory)
	assert.Equal(t, ":8080", cfg.WebSocket.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Simulator.MaxTurns)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `simulator:
  deck_file: custom.yaml
  deck_a: Voltfang Rush
  seed: 42
  max_turns: 25

replay:
  enabled: true
  directory: out

logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", cfg.Simulator.DeckFile)
	assert.Equal(t, "Voltfang Rush", cfg.Simulator.DeckA)
	assert.Equal(t, int64(42), cfg.Simulator.Seed)
	assert.Equal(t, 25, cfg.Simulator.MaxTurns)
	assert.True(t, cfg.Replay.Enabled)
	assert.Equal(t, "out", cfg.Replay.Directory)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Unset keys fall back to defaults.
	assert.Equal(t, ":8080", cfg.WebSocket.Address)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BATTLESIM_SIMULATOR_MAX_TURNS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Simulator.MaxTurns)
}

func TestLoadRejectsNonPositiveMaxTurns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulator:\n  max_turns: 0\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulator: [not a map\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
