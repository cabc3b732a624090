package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		Symbol          string `yaml:"symbol"`
		Interval        string `yaml:"interval"`
		ConfirmInterval string `yaml:"confirm_interval"` // optional higher timeframe
		HistoryBars     int    `yaml:"history_bars"`     // store capacity
	} `yaml:"market"`
	Schedule struct {
		CycleCron string `yaml:"cycle_cron"` // aligned to bar boundaries, seconds field
	} `yaml:"schedule"`
	Runner struct {
		FetchTimeoutSeconds  int `yaml:"fetch_timeout_seconds"`
		MaxConsecutiveErrors int `yaml:"max_consecutive_errors"`
		BreakerCooldownSecs  int `yaml:"breaker_cooldown_seconds"`
	} `yaml:"runner"`
	History struct {
		Size int `yaml:"size"` // rolling display history depth
	} `yaml:"history"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Strategy Strategy `yaml:"strategy"`
}

// Load reads config from a YAML file, applies the strategy preset, then
// environment variable overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		// First pass only to learn the preset name, second pass lets the
		// file override individual preset fields.
		var probe struct {
			Strategy struct {
				Preset string `yaml:"preset"`
			} `yaml:"strategy"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		preset, err := PresetByName(probe.Strategy.Preset)
		if err != nil {
			return nil, err
		}
		cfg.Strategy = preset
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else {
		cfg.Strategy = DefaultStrategy()
	}

	// Environment variable overrides
	if v := os.Getenv("TX_SYMBOL"); v != "" {
		cfg.Market.Symbol = v
	}
	if v := os.Getenv("TX_INTERVAL"); v != "" {
		cfg.Market.Interval = v
	}
	if v := os.Getenv("TX_CYCLE_CRON"); v != "" {
		cfg.Schedule.CycleCron = v
	}
	if v := os.Getenv("TX_STRATEGY_PRESET"); v != "" {
		preset, err := PresetByName(v)
		if err != nil {
			return nil, err
		}
		cfg.Strategy = preset
	}
	if v := os.Getenv("TX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TX_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Size = n
		}
	}

	// Defaults
	if cfg.Market.Symbol == "" {
		cfg.Market.Symbol = "BTC/USD"
	}
	if cfg.Market.Interval == "" {
		cfg.Market.Interval = "1m"
	}
	if cfg.Market.HistoryBars == 0 {
		cfg.Market.HistoryBars = 200
	}
	if cfg.Schedule.CycleCron == "" {
		cfg.Schedule.CycleCron = "0 * * * * *"
	}
	if cfg.Runner.FetchTimeoutSeconds == 0 {
		cfg.Runner.FetchTimeoutSeconds = 8
	}
	if cfg.Runner.MaxConsecutiveErrors == 0 {
		cfg.Runner.MaxConsecutiveErrors = 3
	}
	if cfg.Runner.BreakerCooldownSecs == 0 {
		cfg.Runner.BreakerCooldownSecs = 120
	}
	if cfg.History.Size == 0 {
		cfg.History.Size = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Market.Symbol == "" {
		return fmt.Errorf("market.symbol is required")
	}
	if c.Market.HistoryBars < 50 {
		return fmt.Errorf("market.history_bars must be at least 50")
	}
	if c.Runner.MaxConsecutiveErrors < 1 {
		return fmt.Errorf("runner.max_consecutive_errors must be positive")
	}
	return c.Strategy.Validate()
}
