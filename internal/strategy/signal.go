package strategy

import (
	"math"

	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// decideSignal evaluates the rule chain in priority order, first match wins.
// It is a pure function of the snapshot, trend, divergence and the last two
// candles; the cooldown overlay lives in the engine.
func decideSignal(
	snap *model.IndicatorSnapshot,
	trend model.TrendAssessment,
	div model.DivergenceResult,
	current, previous model.Candle,
	havePrevious bool,
	cfg *config.Strategy,
) model.Signal {
	t := &cfg.Thresholds

	// Rule 0: volatility and momentum gate. A market too quiet to trust
	// breakout or momentum logic short-circuits to WAIT.
	if snap.Close <= 0 || snap.ATR/snap.Close < t.MinATRRatio {
		return model.SignalWait
	}
	if math.Abs(snap.Momentum) < t.MinMomentum {
		return model.SignalWait
	}

	volumeConfirmed := snap.AvgVolume > 0 && snap.Volume > snap.AvgVolume*t.VolumeConfirm
	volumeExtreme := snap.AvgVolume > 0 && snap.Volume > snap.AvgVolume*t.VolumeExtreme

	// Rule 1: strong trend with price, volume and MACD confirmation.
	if trend.Strength > t.StrongTrend {
		if trend.Label == model.TrendStrongUp &&
			snap.Close > snap.EMAShort && snap.Close > snap.KeyResistance &&
			volumeConfirmed && snap.MACDHistogram > 0 {
			return model.SignalCall
		}
		if trend.Label == model.TrendStrongDown &&
			snap.Close < snap.EMAShort && snap.Close < snap.KeySupport &&
			volumeConfirmed && snap.MACDHistogram < 0 {
			return model.SignalPut
		}
	}

	// Rule 2: breakout beyond a key level by more than the buffer, with
	// candle-body and volume confirmation.
	span := snap.KeyResistance - snap.KeySupport
	if span > 0 && havePrevious {
		buffer := span * t.BreakoutBuffer
		if snap.Close > snap.KeyResistance+buffer && breakoutConfirmed(current, snap, cfg) {
			return model.SignalCall
		}
		if snap.Close < snap.KeySupport-buffer && breakoutConfirmed(current, snap, cfg) {
			return model.SignalPut
		}
	}

	// Rule 3: validated regular divergence with MACD histogram agreement.
	if divergenceValidated(div, snap) {
		if div.Kind == model.DivergenceBullish && snap.MACDHistogram > 0 {
			return model.SignalCall
		}
		if div.Kind == model.DivergenceBearish && snap.MACDHistogram < 0 {
			return model.SignalPut
		}
	}

	// Rule 4: oscillator extremes (RSI or stochastic) with price confirmation
	// against the mid EMA and elevated volume.
	oversold := snap.RSI < t.RSIOversold || snap.StochK < t.StochOversold
	overbought := snap.RSI > t.RSIOverbought || snap.StochK > t.StochOverbought
	if oversold && snap.Close > snap.EMAMid && volumeExtreme {
		return model.SignalCall
	}
	if overbought && snap.Close < snap.EMAMid && volumeExtreme {
		return model.SignalPut
	}

	return model.SignalWait
}

// breakoutConfirmed checks the breakout candle's quality: body at least a
// fraction of ATR, volume well above average, and no excessive wick on either
// side.
func breakoutConfirmed(c model.Candle, snap *model.IndicatorSnapshot, cfg *config.Strategy) bool {
	body := c.Body()
	if body < snap.ATR*cfg.Thresholds.BodyATRFrac {
		return false
	}
	if snap.AvgVolume <= 0 || c.Volume < snap.AvgVolume*cfg.Thresholds.VolumeAnomaly {
		return false
	}
	if c.UpperWick() > body*cfg.Thresholds.WickBodyMax || c.LowerWick() > body*cfg.Thresholds.WickBodyMax {
		return false
	}
	return true
}

// divergenceValidated accepts only regular divergences whose price is still
// on the favorable side of the mid EMA: bullish needs price above it, bearish
// below.
func divergenceValidated(div model.DivergenceResult, snap *model.IndicatorSnapshot) bool {
	if !div.Detected || !div.Regular() {
		return false
	}
	if div.Kind == model.DivergenceBullish && snap.Close < snap.EMAMid {
		return false
	}
	if div.Kind == model.DivergenceBearish && snap.Close > snap.EMAMid {
		return false
	}
	return true
}
