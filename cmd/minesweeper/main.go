package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/console"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	envFile := flag.String("env-file", ".env", "Path to a .env file with MSW_* overrides")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	difficulty := flag.String("difficulty", "", "Level: beginner or intermediate (empty to use config default or prompt)")
	seed := flag.Int64("seed", 0, "Mine placement seed (0 to use config default)")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load env file")
	}

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	// Flags override config
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	if *difficulty != "" {
		config.Set("game.difficulty", *difficulty)
	}
	if *seed != 0 {
		config.Set("game.seed", *seed)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	if path := config.ConfigFilePath(); path != "" {
		log.Debug().Str("path", path).Msg("Watching config file")
		config.WatchConfig(reloadLogging)
	}

	bus := events.NewEventBusWithLogger(log.Logger)
	if cfg.Development.LogEvents {
		eventLogger := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.InfoLevel)
		eventLogger.SetDevMode(zerolog.GlobalLevel() <= zerolog.DebugLevel)
		bus.Subscribe(eventLogger)
	}

	opts := console.Options{
		ClearLines: cfg.Console.ClearLines,
		Color:      cfg.Console.Color,
	}
	d, ok, err := cfg.Difficulty()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid difficulty")
	}
	if ok {
		opts.Difficulty = &d
	}

	newGame := func(d core.Difficulty) (console.Game, error) {
		gameCfg := game.GameConfig{
			Difficulty: d,
			Logger:     &log.Logger,
			EventBus:   bus,
		}
		if cfg.Game.Seed != 0 {
			log.Info().Int64("seed", cfg.Game.Seed).Msg("Using fixed seed")
			gameCfg.Rng = rand.New(rand.NewSource(cfg.Game.Seed))
		}
		e, err := game.NewEngine(gameCfg)
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(os.Stdin, os.Stdout, newGame, opts, log.Logger)

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("Game session failed")
			os.Exit(1)
		}
	case <-ctx.Done():
		// The session may be blocked reading stdin; leave without waiting for it.
		log.Info().Msg("Interrupted, exiting")
	}
}

func parseLevel(level string) zerolog.Level {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return logLevel
}

func setupLogging(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	// The board owns stdout, so logs go to stderr.
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

// reloadLogging runs on the config watcher goroutine. Loggers are copied
// into the engine and console at startup, so only the global level is
// applied here; a new logging.format takes effect on restart.
func reloadLogging(c *config.Config) {
	zerolog.SetGlobalLevel(parseLevel(c.Logging.Level))
	log.Info().Str("level", c.Logging.Level).Msg("Config reloaded")
}
