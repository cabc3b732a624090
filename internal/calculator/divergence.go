package calculator

import (
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Extremum is a local maximum or minimum within a series.
type Extremum struct {
	Index int
	Value float64
}

// FindLocalExtrema returns the local maxima (isHigh) or minima of the series
// using a symmetric test: the value must strictly exceed (or undercut) all
// `neighbors` values on each side.
func FindLocalExtrema(data []float64, neighbors int, isHigh bool) []Extremum {
	if neighbors < 1 {
		neighbors = 1
	}
	var out []Extremum
	for i := neighbors; i < len(data)-neighbors; i++ {
		extreme := true
		for j := 1; j <= neighbors; j++ {
			if isHigh {
				if data[i] <= data[i-j] || data[i] <= data[i+j] {
					extreme = false
					break
				}
			} else {
				if data[i] >= data[i-j] || data[i] >= data[i+j] {
					extreme = false
					break
				}
			}
		}
		if extreme {
			out = append(out, Extremum{Index: i, Value: data[i]})
		}
	}
	return out
}

// DetectDivergence compares the last two price extrema against the last two
// oscillator extrema. Regular bearish: price higher high with oscillator
// lower high. Regular bullish: price lower low with oscillator higher low.
// Hidden variants invert the price leg. Requires at least `minLen` bars and
// two extrema of a kind on each side; otherwise NONE.
//
// highs/lows are the price extremes series; oscillator is RSI or the MACD
// histogram aligned to the same bars (the caller truncates the price series
// head to match a shorter oscillator warm-up).
func DetectDivergence(highs, lows, oscillator []float64, minLen, neighbors int) model.DivergenceResult {
	none := model.DivergenceResult{Kind: model.DivergenceNone}
	if len(oscillator) < minLen || len(highs) < minLen || len(lows) < minLen {
		return none
	}

	// Align tails: compare over the overlapping most recent region.
	n := len(oscillator)
	if len(highs) < n {
		n = len(highs)
	}
	if len(lows) < n {
		n = len(lows)
	}
	ph := FindLocalExtrema(highs[len(highs)-n:], neighbors, true)
	pl := FindLocalExtrema(lows[len(lows)-n:], neighbors, false)
	oh := FindLocalExtrema(oscillator[len(oscillator)-n:], neighbors, true)
	ol := FindLocalExtrema(oscillator[len(oscillator)-n:], neighbors, false)

	if len(ph) >= 2 && len(oh) >= 2 {
		priceHigher := ph[len(ph)-1].Value > ph[len(ph)-2].Value
		oscHigher := oh[len(oh)-1].Value > oh[len(oh)-2].Value
		if priceHigher && !oscHigher {
			return model.DivergenceResult{Detected: true, Kind: model.DivergenceBearish}
		}
		if !priceHigher && oscHigher {
			return model.DivergenceResult{Detected: true, Kind: model.DivergenceHiddenBearish}
		}
	}

	if len(pl) >= 2 && len(ol) >= 2 {
		priceLower := pl[len(pl)-1].Value < pl[len(pl)-2].Value
		oscLower := ol[len(ol)-1].Value < ol[len(ol)-2].Value
		if priceLower && !oscLower {
			return model.DivergenceResult{Detected: true, Kind: model.DivergenceBullish}
		}
		if !priceLower && oscLower {
			return model.DivergenceResult{Detected: true, Kind: model.DivergenceHiddenBullish}
		}
	}

	return none
}
