package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full configuration for the simulator binaries.
type Config struct {
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Replay    ReplayConfig    `mapstructure:"replay"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SimulatorConfig configures a simulated match.
type SimulatorConfig struct {
	DeckFile string `mapstructure:"deck_file"`
	DeckA    string `mapstructure:"deck_a"`
	DeckB    string `mapstructure:"deck_b"`
	Seed     int64  `mapstructure:"seed"`
	MaxTurns int    `mapstructure:"max_turns"`
}

// ReplayConfig configures match replay recording.
type ReplayConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Directory string `mapstructure:"directory"`
}

// WebSocketConfig configures the web demo server.
type WebSocketConfig struct {
	Address string `mapstructure:"address"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given YAML file, with environment
// variable overrides under the BATTLESIM prefix (e.g. BATTLESIM_SIMULATOR_SEED).
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("simulator.deck_file", "decks.yaml")
	v.SetDefault("simulator.deck_a", "")
	v.SetDefault("simulator.deck_b", "")
	v.SetDefault("simulator.seed", 1)
	v.SetDefault("simulator.max_turns", 100)
	v.SetDefault("replay.enabled", false)
	v.SetDefault("replay.directory", "replays")
	v.SetDefault("websocket.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("BATTLESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Simulator.MaxTurns <= 0 {
		return nil, fmt.Errorf("simulator.max_turns must be positive, got %d", cfg.Simulator.MaxTurns)
	}

	return &cfg, nil
}
