package calculator

import (
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// KeyLevels are the breakout reference levels over the analysis window.
type KeyLevels struct {
	Support    float64 // window low
	Resistance float64 // window high
	Pivot      float64 // (high + low + last close) / 3
}

// CalculateKeyLevels scans the trailing `period` bars for the window extremes.
// Shrinks the window when fewer bars are available; zero levels on empty input.
func CalculateKeyLevels(candles []model.Candle, period int) KeyLevels {
	if len(candles) == 0 {
		return KeyLevels{}
	}
	start := len(candles) - period
	if period <= 0 || start < 0 {
		start = 0
	}
	window := candles[start:]
	hi, lo := window[0].High, window[0].Low
	for _, c := range window[1:] {
		if c.High > hi {
			hi = c.High
		}
		if c.Low < lo {
			lo = c.Low
		}
	}
	return KeyLevels{
		Support:    lo,
		Resistance: hi,
		Pivot:      (hi + lo + candles[len(candles)-1].Close) / 3,
	}
}

// CalculateLiquidityZones detects local pivot highs/lows within the trailing
// `period` bars (a bar whose high/low strictly exceeds both immediate
// neighbors) and returns the mean of the pivot lows as support and the mean
// of the pivot highs as resistance. Zones fall back to the window extremes
// when no pivot of a kind exists.
func CalculateLiquidityZones(candles []model.Candle, period int) model.LiquidityZones {
	if len(candles) < 3 {
		return model.LiquidityZones{}
	}
	start := len(candles) - period
	if period <= 0 || start < 0 {
		start = 0
	}
	window := candles[start:]

	var hiSum, loSum float64
	var hiN, loN int
	for i := 1; i < len(window)-1; i++ {
		if window[i].High > window[i-1].High && window[i].High > window[i+1].High {
			hiSum += window[i].High
			hiN++
		}
		if window[i].Low < window[i-1].Low && window[i].Low < window[i+1].Low {
			loSum += window[i].Low
			loN++
		}
	}

	levels := CalculateKeyLevels(window, len(window))
	zones := model.LiquidityZones{Support: levels.Support, Resistance: levels.Resistance}
	if loN > 0 {
		zones.Support = loSum / float64(loN)
	}
	if hiN > 0 {
		zones.Resistance = hiSum / float64(hiN)
	}
	return zones
}

// FairValueGap is a three-candle price imbalance.
type FairValueGap struct {
	Bullish bool
	Top     float64
	Bottom  float64
	Index   int // index of the first candle of the triple
}

// Size returns the gap height.
func (g FairValueGap) Size() float64 { return g.Top - g.Bottom }

// DetectFairValueGaps scans candle triples for imbalances: bullish when
// candle[n].low > candle[n-2].high, bearish when candle[n].high <
// candle[n-2].low. Gaps smaller than minGapFrac of the reference price are
// ignored.
func DetectFairValueGaps(candles []model.Candle, minGapFrac float64) []FairValueGap {
	if len(candles) < 3 {
		return nil
	}
	var gaps []FairValueGap
	for i := 0; i+2 < len(candles); i++ {
		first, third := candles[i], candles[i+2]

		if third.Low > first.High {
			if size := third.Low - first.High; first.High == 0 || size/first.High >= minGapFrac {
				gaps = append(gaps, FairValueGap{Bullish: true, Top: third.Low, Bottom: first.High, Index: i})
			}
		}
		if first.Low > third.High {
			if size := first.Low - third.High; third.High == 0 || size/third.High >= minGapFrac {
				gaps = append(gaps, FairValueGap{Bullish: false, Top: first.Low, Bottom: third.High, Index: i})
			}
		}
	}
	return gaps
}
