package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/DiegoTx1/TX-2.0/internal/collector"
	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/notifier"
	"github.com/DiegoTx1/TX-2.0/internal/recorder"
	"github.com/DiegoTx1/TX-2.0/internal/runner"
	"github.com/DiegoTx1/TX-2.0/internal/store"
	"github.com/DiegoTx1/TX-2.0/internal/strategy"
)

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot := bootLogger()
		boot.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		boot := bootLogger()
		boot.Fatal().Err(err).Msg("config validation")
	}

	log := newLogger(cfg)
	log.Info().Str("symbol", cfg.Market.Symbol).Str("interval", cfg.Market.Interval).
		Str("preset", cfg.Strategy.Preset).Msg("TX-2.0 starting")

	// Init fetcher
	fetcher := newFetcher()
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	// Init candle stores
	primary := store.New(cfg.Market.Interval, cfg.Market.HistoryBars)
	var confirm *store.Store
	if cfg.Market.ConfirmInterval != "" {
		confirm = store.New(cfg.Market.ConfirmInterval, cfg.Market.HistoryBars)
	}

	// Init engine
	engine := strategy.NewEngine(cfg.Strategy, primary, confirm, log)

	// Init recorder
	var rec recorder.Recorder
	if cfg.History.Size > 0 {
		rec = recorder.NewMemoryRecorder(cfg.History.Size)
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	// Init notifier
	not := notifier.NewLogNotifier(log)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init runner
	run := runner.New(ctx, cfg, fetcher, primary, confirm, engine, rec, not, log)
	if err := run.Register(); err != nil {
		log.Fatal().Err(err).Msg("register cycle task")
	}
	run.Start()
	defer run.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing cycle now")
		go run.RunNow()
	}

	log.Info().Msg("TX-2.0 is running, press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("TX-2.0 stopped")
}

// newFetcher builds the candle source. The synthetic generator is the only
// built-in source; shape and seed come from the environment so runs stay
// reproducible.
func newFetcher() collector.Fetcher {
	shape := collector.ShapeUptrend
	if v := os.Getenv("TX_SYNTHETIC_SHAPE"); v != "" {
		shape = collector.Shape(v)
	}
	var seed int64 = 1
	if v := os.Getenv("TX_SYNTHETIC_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}
	return collector.NewSyntheticFetcher(shape, seed)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Log.Pretty {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// bootLogger is used before the config is available.
func bootLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}
