package strategy

import (
	"github.com/rs/zerolog"

	"github.com/DiegoTx1/TX-2.0/internal/calculator"
	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
	"github.com/DiegoTx1/TX-2.0/internal/store"
)

// Engine runs the full analysis pipeline: snapshot, trend classification,
// divergence detection, signal decision and confidence scoring. The
// configuration is immutable for the engine's lifetime; the only state
// carried across cycles is the signal cooldown counter, which is explicit
// here rather than hidden in indicator caches.
type Engine struct {
	cfg      config.Strategy
	primary  *store.Store
	confirm  *store.Store // optional higher timeframe, may be nil
	cooldown int
	log      zerolog.Logger
}

// NewEngine creates an engine over the primary store. confirm may be nil.
func NewEngine(cfg config.Strategy, primary, confirm *store.Store, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:     cfg,
		primary: primary,
		confirm: confirm,
		log:     log.With().Str("component", "engine").Logger(),
	}
}

// Analyze runs one analysis cycle against the current series. Indicators
// degrade to neutral defaults during warm-up; only an empty series is an
// error. The cooldown counter is advanced as a side effect.
func (e *Engine) Analyze() (*model.AnalysisResult, error) {
	candles := e.primary.Series()
	if len(candles) == 0 {
		return nil, model.ErrInsufficientData
	}

	snap := BuildSnapshot(candles, &e.cfg)
	trend := ClassifyTrend(candles, snap, &e.cfg)
	div := e.detectDivergence(candles)

	current := candles[len(candles)-1]
	var previous model.Candle
	havePrevious := len(candles) >= 2
	if havePrevious {
		previous = candles[len(candles)-2]
	}

	sig := decideSignal(snap, trend, div, current, previous, havePrevious, &e.cfg)

	// Cooldown overlay: a fresh non-WAIT signal arms the counter; while the
	// counter runs the engine forces WAIT to prevent signal chatter.
	if e.cooldown > 0 {
		e.cooldown--
		if sig != model.SignalWait {
			e.log.Debug().Str("suppressed", string(sig)).Int("remaining", e.cooldown).
				Msg("cooldown active, forcing WAIT")
		}
		sig = model.SignalWait
	} else if sig != model.SignalWait {
		e.cooldown = e.cfg.CooldownCycles
	}

	confirmTrend := e.confirmTrend()
	score, criteria := scoreConfidence(sig, snap, trend, div, confirmTrend, &e.cfg)

	return &model.AnalysisResult{
		Signal:     sig,
		Score:      score,
		Criteria:   criteria,
		Trend:      trend,
		Divergence: div,
		Snapshot:   *snap,
		At:         current.Time,
	}, nil
}

// ResetCooldown clears the chatter guard, e.g. after a hard reset.
func (e *Engine) ResetCooldown() { e.cooldown = 0 }

func (e *Engine) detectDivergence(candles []model.Candle) model.DivergenceResult {
	closes := store.Closes(candles)
	rsiSeries := calculator.CalculateRSISeries(closes, e.cfg.Periods.RSI)
	if rsiSeries == nil {
		return model.DivergenceResult{Kind: model.DivergenceNone}
	}
	// The RSI series starts at bar `period`; truncate the price series head
	// so extrema indices line up.
	offset := len(candles) - len(rsiSeries)
	highs := store.Highs(candles[offset:])
	lows := store.Lows(candles[offset:])
	return calculator.DetectDivergence(highs, lows, rsiSeries,
		e.cfg.Periods.DivergenceMinBars, e.cfg.Periods.ExtremeNeighbors)
}

func (e *Engine) confirmTrend() *model.TrendAssessment {
	if e.confirm == nil || e.confirm.Len() == 0 {
		return nil
	}
	candles := e.confirm.Series()
	snap := BuildSnapshot(candles, &e.cfg)
	trend := ClassifyTrend(candles, snap, &e.cfg)
	return &trend
}

// BuildSnapshot computes every indicator of the snapshot from the series as
// of its last bar. Pure: no caches survive the call.
func BuildSnapshot(candles []model.Candle, cfg *config.Strategy) *model.IndicatorSnapshot {
	closes := store.Closes(candles)
	highs := store.Highs(candles)
	lows := store.Lows(candles)
	volumes := store.Volumes(candles)
	last := candles[len(candles)-1]

	snap := &model.IndicatorSnapshot{
		Close:  last.Close,
		Volume: last.Volume,
	}

	snap.RSI = calculator.CalculateRSI(closes, cfg.Periods.RSI)
	snap.StochK, snap.StochD = calculator.CalculateStochastic(highs, lows, closes, cfg.Periods.StochK, cfg.Periods.StochD)
	snap.WilliamsR = calculator.CalculateWilliamsR(highs, lows, closes, cfg.Periods.WilliamsR)

	macd := calculator.CalculateMACD(closes, cfg.Periods.MACDFast, cfg.Periods.MACDSlow, cfg.Periods.MACDSignal)
	snap.MACDLine, snap.MACDSignal, snap.MACDHistogram = macd.Line, macd.Signal, macd.Histogram

	snap.EMAShort = emaOrClose(closes, cfg.Periods.EMAShort, last.Close)
	snap.EMAMid = emaOrClose(closes, cfg.Periods.EMAMid, last.Close)
	snap.EMALong = emaOrClose(closes, cfg.Periods.EMALong, last.Close)
	snap.EMA200 = emaOrClose(closes, 200, last.Close)

	snap.ATR = calculator.CalculateATR(candles, cfg.Periods.ATR)
	st := calculator.CalculateSuperTrend(candles, cfg.Periods.SuperTrend, cfg.Periods.SuperTrendMult)
	snap.SuperTrendValue, snap.SuperTrendDirection = st.Value, st.Direction

	snap.VWAP = calculator.CalculateVWAP(candles, cfg.Periods.VWAP)
	snap.Momentum = calculator.CalculateMomentum(closes, cfg.Periods.Momentum)
	snap.ADX = calculator.CalculateDirectionalStrength(candles, cfg.Periods.ATR)
	snap.AvgVolume = calculator.CalculateAverageVolume(volumes, cfg.Periods.VolumeAvg)

	snap.Profile = calculator.CalculateVolumeProfile(candles, cfg.Periods.KeyLevels, cfg.Periods.ProfileLevels)
	snap.Liquidity = calculator.CalculateLiquidityZones(candles, cfg.Periods.Liquidity)

	levels := calculator.CalculateKeyLevels(candles, cfg.Periods.KeyLevels)
	snap.KeySupport, snap.KeyResistance = levels.Support, levels.Resistance

	for _, gap := range calculator.DetectFairValueGaps(tail(candles, cfg.Periods.Lateral), cfg.Thresholds.MinGapFrac) {
		if gap.Bullish {
			snap.BullishGap = true
		} else {
			snap.BearishGap = true
		}
	}

	snap.Lateral = calculator.DetectLateralMarket(closes, cfg.Periods.Lateral, cfg.Thresholds.LateralThreshold)
	return snap
}

func emaOrClose(closes []float64, period int, fallback float64) float64 {
	v, err := calculator.CalculateEMA(closes, period)
	if err != nil {
		return fallback
	}
	return v
}

func tail(candles []model.Candle, n int) []model.Candle {
	if n <= 0 || len(candles) <= n {
		return candles
	}
	return candles[len(candles)-n:]
}
