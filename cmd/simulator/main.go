package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/pocketcg/battlesim/internal/config"
	"github.com/pocketcg/battlesim/internal/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config.yaml", "path to configuration file")
	deckA      = flag.String("deck-a", "", "name of the first deck (overrides config)")
	deckB      = flag.String("deck-b", "", "name of the second deck (overrides config)")
	seed       = flag.Int64("seed", 0, "RNG seed (overrides config when non-zero)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *deckA != "" {
		cfg.Simulator.DeckA = *deckA
	}
	if *deckB != "" {
		cfg.Simulator.DeckB = *deckB
	}
	if *seed != 0 {
		cfg.Simulator.Seed = *seed
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting battle simulator",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.Int64("seed", cfg.Simulator.Seed),
	)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	decks, err := game.ParseDeckFile(cfg.Simulator.DeckFile)
	if err != nil {
		return fmt.Errorf("load deck file: %w", err)
	}

	pickDeck := func(name string) (*game.Deck, error) {
		if name == "" {
			return nil, fmt.Errorf("no deck selected; pass -deck-a/-deck-b or set simulator.deck_a/deck_b")
		}
		deck, ok := decks[name]
		if !ok {
			return nil, fmt.Errorf("deck %q not found in %s", name, cfg.Simulator.DeckFile)
		}
		return deck, nil
	}

	da, err := pickDeck(cfg.Simulator.DeckA)
	if err != nil {
		return err
	}
	db, err := pickDeck(cfg.Simulator.DeckB)
	if err != nil {
		return err
	}

	playerA := game.NewPlayer(da.Name, da)
	playerB := game.NewPlayer(db.Name, db)
	rng := rand.New(rand.NewSource(cfg.Simulator.Seed))
	engine := game.NewBattleEngine(playerA, playerB, rng, logger)

	var recorder *game.ReplayRecorder
	if cfg.Replay.Enabled {
		recorder = game.NewReplayRecorder(logger, cfg.Replay.Directory)
		engine.SetRecorder(recorder)
	}

	result, err := engine.SimulateGame(game.GreedyPolicy{}, game.GreedyPolicy{}, cfg.Simulator.MaxTurns)
	if err != nil {
		return err
	}

	for _, line := range result.Log {
		fmt.Println(line)
	}
	fmt.Println()
	if result.WinnerName != "" {
		fmt.Printf("Winner: %s after %d turn(s)\n", result.WinnerName, result.Turns)
	} else {
		fmt.Printf("Tie after %d turn(s)\n", result.Turns)
	}
	fmt.Printf("Prizes left: %s=%d, %s=%d\n",
		playerA.Name(), result.PrizesLeftA,
		playerB.Name(), result.PrizesLeftB,
	)

	if recorder != nil {
		if err := recorder.SaveReplay(engine.MatchID()); err != nil {
			logger.Warn("failed to save replay", zap.Error(err))
		} else {
			fmt.Printf("Replay saved: %s/%s.replay\n", cfg.Replay.Directory, engine.MatchID())
		}
	}

	return nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
