package calculator

import "math"

// CalculateMomentum returns the fractional close change over the trailing
// `period` bars: (last - close[n-period-1]) / close[n-period-1]. Returns 0 on
// insufficient data or a zero base price.
func CalculateMomentum(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 0
	}
	base := closes[len(closes)-period-1]
	if base == 0 {
		return 0
	}
	return (closes[len(closes)-1] - base) / base
}

// DetectLateralMarket reports a sideways market: the mean absolute
// close-to-close change over the trailing `period` bars falls below
// `threshold` as a fraction of the last close.
func DetectLateralMarket(closes []float64, period int, threshold float64) bool {
	if period < 2 || len(closes) < period {
		return false
	}
	last := closes[len(closes)-1]
	if last == 0 {
		return false
	}
	sum := 0.0
	for i := len(closes) - period + 1; i < len(closes); i++ {
		sum += math.Abs(closes[i] - closes[i-1])
	}
	mean := sum / float64(period-1)
	return mean/last < threshold
}

// RangeFraction returns (window high - window low) / last close over the
// trailing `period` bars, the lateral-range measure for the SIDEWAYS state.
// Returns 0 on insufficient data.
func RangeFraction(highs, lows, closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period {
		return 0
	}
	start := len(closes) - period
	hi, lo := highs[start], lows[start]
	for i := start + 1; i < len(closes); i++ {
		if highs[i] > hi {
			hi = highs[i]
		}
		if lows[i] < lo {
			lo = lows[i]
		}
	}
	last := closes[len(closes)-1]
	if last == 0 {
		return 0
	}
	return (hi - lo) / last
}
