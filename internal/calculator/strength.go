package calculator

import (
	"math"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// CalculateDirectionalStrength computes an ADX-style directional strength:
// +DM, -DM and true range accumulated over the trailing `period` bars, then
// DX = |+DI - -DI| / (+DI + -DI) * 100, clamped to [0, 100]. Returns 0 on
// insufficient data or a zero true-range sum.
func CalculateDirectionalStrength(candles []model.Candle, period int) float64 {
	if period <= 0 || len(candles) < period+1 {
		return 0
	}
	var plusDM, minusDM, trSum float64
	for i := len(candles) - period; i < len(candles); i++ {
		up := candles[i].High - candles[i-1].High
		down := candles[i-1].Low - candles[i].Low
		if up > down && up > 0 {
			plusDM += up
		}
		if down > up && down > 0 {
			minusDM += down
		}
		trSum += trueRange(candles[i], candles[i-1])
	}
	if trSum == 0 {
		return 0
	}
	plusDI := plusDM / trSum * 100
	minusDI := minusDM / trSum * 100
	sum := plusDI + minusDI
	if sum == 0 {
		return 0
	}
	dx := math.Abs(plusDI-minusDI) / sum * 100
	if dx < 0 {
		return 0
	}
	if dx > 100 {
		return 100
	}
	return dx
}
