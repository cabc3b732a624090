package strategy

import (
	"math"

	"github.com/DiegoTx1/TX-2.0/internal/calculator"
	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Strength contributions of the trend components. They sum to 100 when every
// bullish (or bearish) component fires at full weight.
const (
	trendOrderingWeight = 30.0
	trendSlopeWeight    = 20.0
	trendPriceWeight    = 15.0
	trendVolumeWeight   = 15.0
	trendADXWeight      = 20.0
)

// ClassifyTrend combines EMA ordering, short-EMA slope, price position,
// volume confirmation and directional strength into a categorical trend with
// a 0-100 strength. A narrow trailing range short-circuits to SIDEWAYS.
func ClassifyTrend(candles []model.Candle, snap *model.IndicatorSnapshot, cfg *config.Strategy) model.TrendAssessment {
	if len(candles) < 3 {
		return model.TrendAssessment{Label: model.TrendNeutral}
	}

	closes := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
		highs[i] = c.High
		lows[i] = c.Low
	}

	// Lateral regime beats direction: a compressed trailing range is
	// SIDEWAYS no matter how the EMAs line up.
	rangeFrac := calculator.RangeFraction(highs, lows, closes, cfg.Periods.SidewaysRangeBars)
	if len(closes) >= cfg.Periods.SidewaysRangeBars && rangeFrac > 0 && rangeFrac < cfg.Thresholds.SidewaysRangeFrac {
		return model.TrendAssessment{Label: model.TrendSideways, Strength: 0}
	}

	var bull, bear float64

	// (a) EMA ordering
	if snap.EMAShort > snap.EMAMid && snap.EMAMid > snap.EMALong {
		bull += trendOrderingWeight
	} else if snap.EMAShort < snap.EMAMid && snap.EMAMid < snap.EMALong {
		bear += trendOrderingWeight
	}

	// (b) short EMA slope over the trailing slope window
	slope := emaSlope(closes, cfg.Periods.EMAShort, cfg.Periods.SlopeWindow)
	if snap.Close > 0 {
		// Normalize: a slope of 0.05% of price per bar counts as full weight.
		mag := math.Min(trendSlopeWeight, math.Abs(slope)/(snap.Close*0.0005)*trendSlopeWeight)
		if slope > 0 {
			bull += mag
		} else if slope < 0 {
			bear += mag
		}
	}

	// (c) price position relative to the short EMA
	if snap.Close > snap.EMAShort {
		bull += trendPriceWeight
	} else if snap.Close < snap.EMAShort {
		bear += trendPriceWeight
	}

	// (d) volume confirmation strengthens whichever side leads
	if snap.AvgVolume > 0 && snap.Volume > snap.AvgVolume*cfg.Thresholds.VolumeConfirm {
		if bull > bear {
			bull += trendVolumeWeight
		} else if bear > bull {
			bear += trendVolumeWeight
		}
	}

	// (e) directional strength above threshold confirms the leading side
	if snap.ADX > cfg.Thresholds.ADX {
		if bull > bear {
			bull += trendADXWeight
		} else if bear > bull {
			bear += trendADXWeight
		}
	}

	strength := bull
	bullish := true
	if bear > bull {
		strength = bear
		bullish = false
	}
	if strength > 100 {
		strength = 100
	}

	label := model.TrendNeutral
	switch {
	case strength > cfg.Thresholds.StrongTrend && bullish:
		label = model.TrendStrongUp
	case strength > cfg.Thresholds.StrongTrend:
		label = model.TrendStrongDown
	case strength > cfg.Thresholds.ModerateTrend && bullish:
		label = model.TrendUp
	case strength > cfg.Thresholds.ModerateTrend:
		label = model.TrendDown
	}
	return model.TrendAssessment{Label: label, Strength: strength}
}

// emaSlope returns the regression slope of the short EMA series over the
// trailing window, 0 when the series is too short.
func emaSlope(closes []float64, emaPeriod, window int) float64 {
	series, err := calculator.CalculateEMASeries(closes, emaPeriod)
	if err != nil {
		return 0
	}
	if window < 2 {
		window = 2
	}
	if len(series) > window {
		series = series[len(series)-window:]
	}
	return calculator.LinearRegressionSlope(series)
}
