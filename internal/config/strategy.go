package config

import "fmt"

// Strategy is the full parameter set of the signal engine: periods,
// thresholds and score weights. Immutable after engine construction; the only
// way to change parameters mid-run is to build a new engine.
type Strategy struct {
	Preset string `yaml:"preset"`

	Periods struct {
		RSI                int     `yaml:"rsi"`
		StochK             int     `yaml:"stoch_k"`
		StochD             int     `yaml:"stoch_d"`
		WilliamsR          int     `yaml:"williams_r"`
		EMAShort           int     `yaml:"ema_short"`
		EMAMid             int     `yaml:"ema_mid"`
		EMALong            int     `yaml:"ema_long"`
		MACDFast           int     `yaml:"macd_fast"`
		MACDSlow           int     `yaml:"macd_slow"`
		MACDSignal         int     `yaml:"macd_signal"`
		ATR                int     `yaml:"atr"`
		SuperTrend         int     `yaml:"supertrend"`
		SuperTrendMult     float64 `yaml:"supertrend_multiplier"`
		VWAP               int     `yaml:"vwap"`
		Momentum           int     `yaml:"momentum"`
		Lateral            int     `yaml:"lateral"`
		VolumeAvg          int     `yaml:"volume_avg"`
		KeyLevels          int     `yaml:"key_levels"`
		Liquidity          int     `yaml:"liquidity"`
		ProfileLevels      int     `yaml:"profile_levels"`
		DivergenceMinBars  int     `yaml:"divergence_min_bars"`
		ExtremeNeighbors   int     `yaml:"extreme_neighbors"`
		SlopeWindow        int     `yaml:"slope_window"`
		SidewaysRangeBars  int     `yaml:"sideways_range_bars"`
	} `yaml:"periods"`

	Thresholds struct {
		RSIOversold       float64 `yaml:"rsi_oversold"`
		RSIOverbought     float64 `yaml:"rsi_overbought"`
		StochOversold     float64 `yaml:"stoch_oversold"`
		StochOverbought   float64 `yaml:"stoch_overbought"`
		StrongTrend       float64 `yaml:"strong_trend"`       // strength above => STRONG_*
		ModerateTrend     float64 `yaml:"moderate_trend"`     // strength above => UP/DOWN
		ADX               float64 `yaml:"adx"`                // directional strength confirm
		MinATRRatio       float64 `yaml:"min_atr_ratio"`      // below => volatility gate to WAIT
		QuietATRRatio     float64 `yaml:"quiet_atr_ratio"`    // below => score penalty
		MinMomentum       float64 `yaml:"min_momentum"`       // |fractional momentum| gate
		ScoreMomentum     float64 `yaml:"score_momentum"`     // |momentum| above => score bonus
		LateralThreshold  float64 `yaml:"lateral_threshold"`  // mean abs change / price
		SidewaysRangeFrac float64 `yaml:"sideways_range_frac"`
		VolumeConfirm     float64 `yaml:"volume_confirm"` // x rolling average
		VolumeAnomaly     float64 `yaml:"volume_anomaly"`
		VolumeExtreme     float64 `yaml:"volume_extreme"`
		BreakoutBuffer    float64 `yaml:"breakout_buffer"`  // fraction of S/R span
		BodyATRFrac       float64 `yaml:"body_atr_frac"`    // min body as fraction of ATR
		WickBodyMax       float64 `yaml:"wick_body_max"`    // max wick as multiple of body
		SRProximity       float64 `yaml:"sr_proximity"`     // distance-to-level / price
		MinGapFrac        float64 `yaml:"min_gap_frac"`     // fair value gap floor
	} `yaml:"thresholds"`

	Scoring struct {
		Base           int `yaml:"base"`
		Trend          int `yaml:"trend"`
		Volume         int `yaml:"volume"`
		SuperTrend     int `yaml:"supertrend"`
		Divergence     int `yaml:"divergence"`
		Momentum       int `yaml:"momentum"`
		KeyLevel       int `yaml:"key_level"`
		FairValueGap   int `yaml:"fair_value_gap"`
		MultiTimeframe int `yaml:"multi_timeframe"`
		QuietPenalty   int `yaml:"quiet_penalty"`
		LateralPenalty int `yaml:"lateral_penalty"`
	} `yaml:"scoring"`

	CooldownCycles int `yaml:"cooldown_cycles"`
}

// DefaultStrategy returns the default preset.
func DefaultStrategy() Strategy {
	var s Strategy
	s.Preset = "default"

	s.Periods.RSI = 9
	s.Periods.StochK = 14
	s.Periods.StochD = 3
	s.Periods.WilliamsR = 14
	s.Periods.EMAShort = 5
	s.Periods.EMAMid = 13
	s.Periods.EMALong = 200
	s.Periods.MACDFast = 6
	s.Periods.MACDSlow = 13
	s.Periods.MACDSignal = 9
	s.Periods.ATR = 14
	s.Periods.SuperTrend = 7
	s.Periods.SuperTrendMult = 3.0
	s.Periods.VWAP = 20
	s.Periods.Momentum = 5
	s.Periods.Lateral = 20
	s.Periods.VolumeAvg = 20
	s.Periods.KeyLevels = 50
	s.Periods.Liquidity = 30
	s.Periods.ProfileLevels = 20
	s.Periods.DivergenceMinBars = 8
	s.Periods.ExtremeNeighbors = 2
	s.Periods.SlopeWindow = 10
	s.Periods.SidewaysRangeBars = 20

	s.Thresholds.RSIOversold = 22
	s.Thresholds.RSIOverbought = 78
	s.Thresholds.StochOversold = 12
	s.Thresholds.StochOverbought = 88
	s.Thresholds.StrongTrend = 75
	s.Thresholds.ModerateTrend = 45
	s.Thresholds.ADX = 25
	s.Thresholds.MinATRRatio = 0.005
	s.Thresholds.QuietATRRatio = 0.003
	s.Thresholds.MinMomentum = 0.001
	s.Thresholds.ScoreMomentum = 0.005
	s.Thresholds.LateralThreshold = 0.005
	s.Thresholds.SidewaysRangeFrac = 0.005
	s.Thresholds.VolumeConfirm = 1.5
	s.Thresholds.VolumeAnomaly = 1.8
	s.Thresholds.VolumeExtreme = 2.0
	s.Thresholds.BreakoutBuffer = 0.04
	s.Thresholds.BodyATRFrac = 0.7
	s.Thresholds.WickBodyMax = 2.0
	s.Thresholds.SRProximity = 0.01
	s.Thresholds.MinGapFrac = 0.001

	s.Scoring.Base = 60
	s.Scoring.Trend = 30
	s.Scoring.Volume = 20
	s.Scoring.SuperTrend = 15
	s.Scoring.Divergence = 15
	s.Scoring.Momentum = 10
	s.Scoring.KeyLevel = 10
	s.Scoring.FairValueGap = 5
	s.Scoring.MultiTimeframe = 10
	s.Scoring.QuietPenalty = 20
	s.Scoring.LateralPenalty = 15

	s.CooldownCycles = 3
	return s
}

// PresetByName maps a preset name to its parameter set. The historical engine
// variants collapse into these presets; an empty name selects the default.
func PresetByName(name string) (Strategy, error) {
	switch name {
	case "", "default":
		return DefaultStrategy(), nil
	case "conservative":
		s := DefaultStrategy()
		s.Preset = "conservative"
		s.Thresholds.RSIOversold = 18
		s.Thresholds.RSIOverbought = 82
		s.Thresholds.StrongTrend = 80
		s.Thresholds.VolumeConfirm = 1.8
		s.Thresholds.VolumeExtreme = 2.5
		s.Thresholds.MinATRRatio = 0.008
		s.CooldownCycles = 5
		return s, nil
	case "aggressive":
		s := DefaultStrategy()
		s.Preset = "aggressive"
		s.Thresholds.RSIOversold = 28
		s.Thresholds.RSIOverbought = 72
		s.Thresholds.StrongTrend = 65
		s.Thresholds.ModerateTrend = 40
		s.Thresholds.VolumeConfirm = 1.3
		s.Thresholds.MinATRRatio = 0.003
		s.CooldownCycles = 1
		return s, nil
	default:
		return Strategy{}, fmt.Errorf("unknown strategy preset %q", name)
	}
}

// Validate checks the parameter set for internal consistency.
func (s *Strategy) Validate() error {
	p := &s.Periods
	for _, c := range []struct {
		name  string
		value int
	}{
		{"rsi", p.RSI}, {"stoch_k", p.StochK}, {"stoch_d", p.StochD},
		{"ema_short", p.EMAShort}, {"ema_mid", p.EMAMid}, {"ema_long", p.EMALong},
		{"macd_fast", p.MACDFast}, {"macd_slow", p.MACDSlow}, {"macd_signal", p.MACDSignal},
		{"atr", p.ATR}, {"supertrend", p.SuperTrend},
	} {
		if c.value <= 0 {
			return fmt.Errorf("strategy period %s must be positive", c.name)
		}
	}
	if p.MACDFast >= p.MACDSlow {
		return fmt.Errorf("macd_fast must be below macd_slow")
	}
	if p.EMAShort >= p.EMAMid || p.EMAMid >= p.EMALong {
		return fmt.Errorf("ema periods must be strictly increasing")
	}
	if s.Thresholds.RSIOversold >= s.Thresholds.RSIOverbought {
		return fmt.Errorf("rsi_oversold must be below rsi_overbought")
	}
	if s.Scoring.Base < 0 || s.Scoring.Base > 100 {
		return fmt.Errorf("scoring base must be inside [0,100]")
	}
	if s.CooldownCycles < 0 {
		return fmt.Errorf("cooldown_cycles must not be negative")
	}
	return nil
}

// MinBars returns the number of bars needed for fully non-degraded output:
// the longest period plus one for the previous-close indicators.
func (s *Strategy) MinBars() int {
	max := s.Periods.EMALong
	for _, v := range []int{
		s.Periods.MACDSlow + s.Periods.MACDSignal, s.Periods.RSI + 1,
		s.Periods.StochK + s.Periods.StochD, s.Periods.ATR + 1,
		s.Periods.KeyLevels, s.Periods.Lateral,
	} {
		if v > max {
			max = v
		}
	}
	return max + 1
}
