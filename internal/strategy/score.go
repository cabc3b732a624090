package strategy

import (
	"fmt"
	"math"

	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// scoreConfidence starts from the configured base and adds bounded
// contributions per confirming factor and penalties per conflicting one,
// clamping the result to [0, 100]. The returned criteria list is the ordered
// human-readable trace the rendering collaborator displays.
func scoreConfidence(
	sig model.Signal,
	snap *model.IndicatorSnapshot,
	trend model.TrendAssessment,
	div model.DivergenceResult,
	confirmTrend *model.TrendAssessment,
	cfg *config.Strategy,
) (int, []string) {
	w := &cfg.Scoring
	t := &cfg.Thresholds
	score := w.Base

	if trend.Strength > t.StrongTrend {
		score += w.Trend
	}
	if snap.AvgVolume > 0 && snap.Volume > snap.AvgVolume*t.VolumeAnomaly {
		score += w.Volume
	}
	if (sig == model.SignalCall && snap.SuperTrendDirection > 0 && snap.Close > snap.SuperTrendValue) ||
		(sig == model.SignalPut && snap.SuperTrendDirection < 0 && snap.Close < snap.SuperTrendValue) {
		score += w.SuperTrend
	}
	if divergenceValidated(div, snap) {
		score += w.Divergence
	}
	if math.Abs(snap.Momentum) > t.ScoreMomentum {
		score += w.Momentum
	}
	if levelScore := keyLevelScore(sig, snap, t.SRProximity); levelScore != 0 {
		score += levelScore * w.KeyLevel
	}
	if (sig == model.SignalCall && snap.BullishGap) ||
		(sig == model.SignalPut && snap.BearishGap) {
		score += w.FairValueGap
	}
	if confirmTrend != nil {
		if (sig == model.SignalCall && confirmTrend.Bullish()) ||
			(sig == model.SignalPut && confirmTrend.Bearish()) {
			score += w.MultiTimeframe
		}
	}

	if snap.Close > 0 && snap.ATR/snap.Close < t.QuietATRRatio {
		score -= w.QuietPenalty
	}
	if snap.Lateral {
		score -= w.LateralPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, buildCriteria(sig, snap, trend, div, cfg)
}

// keyLevelScore rewards a signal fired away from the level it must clear and
// penalizes one fired right into opposing liquidity: +1 / -1, scaled by the
// key-level weight.
func keyLevelScore(sig model.Signal, snap *model.IndicatorSnapshot, proximity float64) int {
	if snap.Close <= 0 {
		return 0
	}
	switch sig {
	case model.SignalCall:
		if snap.Liquidity.Resistance > snap.Close {
			dist := (snap.Liquidity.Resistance - snap.Close) / snap.Close
			if dist < proximity {
				return -1 // buying straight into resistance
			}
			return 1
		}
	case model.SignalPut:
		if snap.Liquidity.Support > 0 && snap.Liquidity.Support < snap.Close {
			dist := (snap.Close - snap.Liquidity.Support) / snap.Close
			if dist < proximity {
				return -1
			}
			return 1
		}
	}
	return 0
}

func buildCriteria(
	sig model.Signal,
	snap *model.IndicatorSnapshot,
	trend model.TrendAssessment,
	div model.DivergenceResult,
	cfg *config.Strategy,
) []string {
	stDir := "DOWN"
	if snap.SuperTrendDirection > 0 {
		stDir = "UP"
	}
	lateral := "no"
	if snap.Lateral {
		lateral = "yes"
	}
	volumeFlag := ""
	if snap.AvgVolume > 0 && snap.Volume > snap.AvgVolume*cfg.Thresholds.VolumeConfirm {
		volumeFlag = " (elevated)"
	}

	return []string{
		fmt.Sprintf("Trend: %s (%.0f%%)", trend.Label, trend.Strength),
		fmt.Sprintf("Price: %.2f", snap.Close),
		fmt.Sprintf("RSI: %.2f", snap.RSI),
		fmt.Sprintf("MACD: %+.4f", snap.MACDHistogram),
		fmt.Sprintf("Stochastic: %.2f/%.2f", snap.StochK, snap.StochD),
		fmt.Sprintf("Williams %%R: %.2f", snap.WilliamsR),
		fmt.Sprintf("EMA%d %.2f | EMA%d %.2f | EMA%d %.2f",
			cfg.Periods.EMAShort, snap.EMAShort, cfg.Periods.EMAMid, snap.EMAMid, cfg.Periods.EMALong, snap.EMALong),
		fmt.Sprintf("Support: %.2f | Resistance: %.2f", snap.KeySupport, snap.KeyResistance),
		fmt.Sprintf("VWAP: %.2f | POC: %.2f", snap.VWAP, snap.Profile.POC),
		fmt.Sprintf("Divergence: %s", div.Kind),
		fmt.Sprintf("SuperTrend: %s (%.2f)", stDir, snap.SuperTrendValue),
		fmt.Sprintf("ATR: %.4f", snap.ATR),
		fmt.Sprintf("Volume: %.1f%s", snap.Volume, volumeFlag),
		fmt.Sprintf("Lateral: %s", lateral),
		fmt.Sprintf("Signal: %s", sig),
	}
}
