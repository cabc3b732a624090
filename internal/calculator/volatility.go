package calculator

import (
	"math"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// CalculateATR computes the average true range as the SMA of the true range
// over the trailing `period` bars. True range needs the previous close, so at
// least period+1 candles are required; returns 0 otherwise.
func CalculateATR(candles []model.Candle, period int) float64 {
	if period <= 0 || len(candles) < period+1 {
		return 0
	}
	sum := 0.0
	for i := len(candles) - period; i < len(candles); i++ {
		sum += trueRange(candles[i], candles[i-1])
	}
	return sum / float64(period)
}

func trueRange(c, prev model.Candle) float64 {
	tr := c.High - c.Low
	if v := math.Abs(c.High - prev.Close); v > tr {
		tr = v
	}
	if v := math.Abs(c.Low - prev.Close); v > tr {
		tr = v
	}
	return tr
}

// SuperTrendState carries the previous bar's SuperTrend value and direction.
// The state is explicit and owned by the caller; there is no cross-call cache.
type SuperTrendState struct {
	Value     float64
	Direction int // +1 up, -1 down, 0 unseeded
}

// StepSuperTrend advances the SuperTrend by one bar. Bands are
// hl2 +/- multiplier*atr; the direction follows whether the close crossed the
// prior SuperTrend value, and the value ratchets toward price while the
// direction holds, snapping to the opposite band on a flip.
func StepSuperTrend(prev SuperTrendState, c model.Candle, atr, multiplier float64) SuperTrendState {
	hl2 := (c.High + c.Low) / 2
	upper := hl2 + multiplier*atr
	lower := hl2 - multiplier*atr

	if prev.Direction == 0 {
		return SuperTrendState{Value: upper, Direction: 1}
	}

	if c.Close > prev.Value {
		v := lower
		if prev.Direction == 1 && prev.Value > v {
			v = prev.Value
		}
		return SuperTrendState{Value: v, Direction: 1}
	}
	v := upper
	if prev.Direction == -1 && prev.Value < v {
		v = prev.Value
	}
	return SuperTrendState{Value: v, Direction: -1}
}

// CalculateSuperTrend walks the whole series through StepSuperTrend with a
// rolling ATR, returning the last state. Deterministic for a frozen series;
// returns a zero state when there are fewer than period+1 candles.
func CalculateSuperTrend(candles []model.Candle, period int, multiplier float64) SuperTrendState {
	if period <= 0 || len(candles) < period+1 {
		return SuperTrendState{}
	}
	var st SuperTrendState
	for i := period; i < len(candles); i++ {
		atr := CalculateATR(candles[:i+1], period)
		st = StepSuperTrend(st, candles[i], atr, multiplier)
	}
	return st
}
