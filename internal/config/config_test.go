package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Market.Symbol != "BTC/USD" {
		t.Errorf("expected default symbol BTC/USD, got %q", cfg.Market.Symbol)
	}
	if cfg.Market.Interval != "1m" {
		t.Errorf("expected default interval 1m, got %q", cfg.Market.Interval)
	}
	if cfg.Market.HistoryBars != 200 {
		t.Errorf("expected 200 history bars, got %d", cfg.Market.HistoryBars)
	}
	if cfg.Schedule.CycleCron != "0 * * * * *" {
		t.Errorf("expected bar-aligned cron, got %q", cfg.Schedule.CycleCron)
	}
	if cfg.Runner.FetchTimeoutSeconds != 8 || cfg.Runner.MaxConsecutiveErrors != 3 {
		t.Errorf("unexpected runner defaults: %+v", cfg.Runner)
	}
	if cfg.History.Size != 8 {
		t.Errorf("expected history size 8, got %d", cfg.History.Size)
	}
	if cfg.Strategy.Preset != "default" {
		t.Errorf("expected default preset, got %q", cfg.Strategy.Preset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileOverridesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
market:
  symbol: ETH/USD
strategy:
  preset: aggressive
  thresholds:
    rsi_oversold: 30
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Market.Symbol != "ETH/USD" {
		t.Errorf("expected symbol ETH/USD, got %q", cfg.Market.Symbol)
	}
	if cfg.Strategy.Preset != "aggressive" {
		t.Errorf("expected aggressive preset, got %q", cfg.Strategy.Preset)
	}
	// The file overrides an individual preset field.
	if cfg.Strategy.Thresholds.RSIOversold != 30 {
		t.Errorf("expected file override rsi_oversold 30, got %f", cfg.Strategy.Thresholds.RSIOversold)
	}
	// Untouched preset fields survive the second pass.
	if cfg.Strategy.Thresholds.MinATRRatio != 0.003 {
		t.Errorf("expected aggressive min_atr_ratio 0.003, got %f", cfg.Strategy.Thresholds.MinATRRatio)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TX_SYMBOL", "SOL/USD")
	t.Setenv("TX_STRATEGY_PRESET", "conservative")
	t.Setenv("TX_HISTORY_SIZE", "12")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Market.Symbol != "SOL/USD" {
		t.Errorf("expected env symbol SOL/USD, got %q", cfg.Market.Symbol)
	}
	if cfg.Strategy.Preset != "conservative" {
		t.Errorf("expected conservative preset, got %q", cfg.Strategy.Preset)
	}
	if cfg.History.Size != 12 {
		t.Errorf("expected history size 12, got %d", cfg.History.Size)
	}
}

func TestLoad_UnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("strategy:\n  preset: reckless\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetByName(t *testing.T) {
	for _, name := range []string{"", "default", "conservative", "aggressive"} {
		if _, err := PresetByName(name); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
	}
	if _, err := PresetByName("yolo"); err == nil {
		t.Error("expected error for unknown preset")
	}
	cons, _ := PresetByName("conservative")
	aggr, _ := PresetByName("aggressive")
	if cons.Thresholds.MinATRRatio <= aggr.Thresholds.MinATRRatio {
		t.Error("conservative preset must demand more volatility than aggressive")
	}
	if cons.CooldownCycles <= aggr.CooldownCycles {
		t.Error("conservative preset must cool down longer than aggressive")
	}
}

func TestStrategyValidate(t *testing.T) {
	s := DefaultStrategy()
	if err := s.Validate(); err != nil {
		t.Fatalf("default strategy must validate: %v", err)
	}

	bad := DefaultStrategy()
	bad.Periods.MACDFast = 20 // above slow
	if err := bad.Validate(); err == nil {
		t.Error("expected error for macd_fast >= macd_slow")
	}

	bad = DefaultStrategy()
	bad.Periods.EMAShort = 50 // above mid
	if err := bad.Validate(); err == nil {
		t.Error("expected error for non-increasing EMA periods")
	}

	bad = DefaultStrategy()
	bad.Thresholds.RSIOversold = 90
	if err := bad.Validate(); err == nil {
		t.Error("expected error for oversold above overbought")
	}

	bad = DefaultStrategy()
	bad.Periods.RSI = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero period")
	}

	bad = DefaultStrategy()
	bad.CooldownCycles = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative cooldown")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Market.HistoryBars = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for too few history bars")
	}
}

func TestStrategyMinBars(t *testing.T) {
	s := DefaultStrategy()
	// The 200-bar EMA dominates every other warm-up requirement.
	if got := s.MinBars(); got != 201 {
		t.Errorf("expected 201 minimum bars, got %d", got)
	}
}
