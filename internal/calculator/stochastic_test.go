package calculator

import (
	"math"
	"testing"
)

func TestCalculateStochastic_CloseAtWindowHigh(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = float64(100 + i)
		highs[i] = closes[i]
		lows[i] = closes[i] - 1
	}
	k, d := CalculateStochastic(highs, lows, closes, 14, 3)
	if math.Abs(k-100) > 1e-9 {
		t.Errorf("expected %%K 100 when close sits at the window high, got %f", k)
	}
	if d <= 50 || d > 100 {
		t.Errorf("expected %%D near the top of the range, got %f", d)
	}
}

func TestCalculateStochastic_ZeroRange(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i], lows[i], closes[i] = 100, 100, 100
	}
	k, d := CalculateStochastic(highs, lows, closes, 14, 3)
	if k != 50 || d != 50 {
		t.Errorf("expected neutral 50/50 on a zero-range window, got %f/%f", k, d)
	}
}

func TestCalculateStochastic_InsufficientData(t *testing.T) {
	k, d := CalculateStochastic([]float64{1}, []float64{1}, []float64{1}, 14, 3)
	if k != 50 || d != 50 {
		t.Errorf("expected neutral 50/50 during warm-up, got %f/%f", k, d)
	}
}

func TestCalculateWilliamsR_Extremes(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = float64(100 + i)
		highs[i] = closes[i]
		lows[i] = closes[i] - 1
	}
	// Close at the window high.
	if got := CalculateWilliamsR(highs, lows, closes, 14); math.Abs(got) > 1e-9 {
		t.Errorf("expected %%R 0 at the window high, got %f", got)
	}

	// Mirror: close at the window low.
	for i := 0; i < n; i++ {
		closes[i] = float64(200 - i)
		lows[i] = closes[i]
		highs[i] = closes[i] + 1
	}
	if got := CalculateWilliamsR(highs, lows, closes, 14); math.Abs(got+100) > 1e-9 {
		t.Errorf("expected %%R -100 at the window low, got %f", got)
	}
}

func TestCalculateWilliamsR_ZeroRange(t *testing.T) {
	flat := []float64{100, 100, 100, 100, 100}
	if got := CalculateWilliamsR(flat, flat, flat, 5); got != -50 {
		t.Errorf("expected neutral -50 on a zero-range window, got %f", got)
	}
	if got := CalculateWilliamsR(flat[:2], flat[:2], flat[:2], 5); got != -50 {
		t.Errorf("expected neutral -50 during warm-up, got %f", got)
	}
}
