package calculator

import (
	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// CalculateVWAP computes the volume-weighted average of the typical price
// (high+low+close)/3 over the trailing `period` bars. Falls back to the last
// close when there is no volume or no data.
func CalculateVWAP(candles []model.Candle, period int) float64 {
	if len(candles) == 0 {
		return 0
	}
	start := len(candles) - period
	if period <= 0 || start < 0 {
		start = 0
	}
	var pv, vol float64
	for i := start; i < len(candles); i++ {
		pv += candles[i].TypicalPrice() * candles[i].Volume
		vol += candles[i].Volume
	}
	if vol == 0 {
		return candles[len(candles)-1].Close
	}
	return pv / vol
}

// CalculateAverageVolume returns the SMA of volume over the trailing period,
// or 0 on insufficient data.
func CalculateAverageVolume(volumes []float64, period int) float64 {
	avg, err := CalculateSMA(volumes, period)
	if err != nil {
		return 0
	}
	return avg
}

// valueAreaFraction is the share of total volume the value area must cover.
const valueAreaFraction = 0.70

// CalculateVolumeProfile buckets each candle's volume into `levels` equal
// price bins spanning the window's low-high range, using the typical price as
// the bin key. POC is the bin with maximum volume; the value area accumulates
// volume-sorted bins until 70% of total volume is covered, and VAH/VAL are
// the highest/lowest bin midpoints of that set. Bin prices are midpoints at
// full float64 precision; no decimal rounding is applied.
func CalculateVolumeProfile(candles []model.Candle, period, levels int) model.VolumeProfile {
	if len(candles) == 0 {
		return model.VolumeProfile{}
	}
	start := len(candles) - period
	if period <= 0 || start < 0 {
		start = 0
	}
	window := candles[start:]
	if levels < 2 {
		levels = 10
	}

	lo, hi := window[0].Low, window[0].High
	for _, c := range window[1:] {
		if c.Low < lo {
			lo = c.Low
		}
		if c.High > hi {
			hi = c.High
		}
	}
	last := window[len(window)-1].Close
	if hi == lo {
		// Degenerate flat window: everything collapses onto one price.
		return model.VolumeProfile{POC: last, ValueAreaHigh: last, ValueAreaLow: last}
	}

	binSize := (hi - lo) / float64(levels)
	volumes := make([]float64, levels)
	total := 0.0
	for _, c := range window {
		idx := int((c.TypicalPrice() - lo) / binSize)
		if idx < 0 {
			idx = 0
		}
		if idx >= levels {
			idx = levels - 1
		}
		volumes[idx] += c.Volume
		total += c.Volume
	}
	if total == 0 {
		return model.VolumeProfile{POC: last, ValueAreaHigh: hi, ValueAreaLow: lo}
	}

	binPrice := func(i int) float64 { return lo + (float64(i)+0.5)*binSize }

	pocIdx := 0
	for i, v := range volumes {
		if v > volumes[pocIdx] {
			pocIdx = i
		}
	}

	// Volume-sorted accumulation until the value-area share is reached.
	order := make([]int, levels)
	for i := range order {
		order[i] = i
	}
	for i := 1; i < levels; i++ {
		for j := i; j > 0 && volumes[order[j]] > volumes[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	vah, val := binPrice(pocIdx), binPrice(pocIdx)
	acc := 0.0
	for _, idx := range order {
		acc += volumes[idx]
		if p := binPrice(idx); p > vah {
			vah = p
		} else if p < val {
			val = p
		}
		if acc >= total*valueAreaFraction {
			break
		}
	}

	return model.VolumeProfile{POC: binPrice(pocIdx), ValueAreaHigh: vah, ValueAreaLow: val}
}
