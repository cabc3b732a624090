package calculator

import (
	"math"
	"testing"
)

func TestCalculateMomentum(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 110}
	got := CalculateMomentum(closes, 5)
	want := (110.0 - 101.0) / 101.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected momentum %f, got %f", want, got)
	}
}

func TestCalculateMomentum_Negative(t *testing.T) {
	closes := []float64{110, 109, 108, 107, 106, 105, 100}
	if got := CalculateMomentum(closes, 5); got >= 0 {
		t.Errorf("expected negative momentum, got %f", got)
	}
}

func TestCalculateMomentum_InsufficientData(t *testing.T) {
	if got := CalculateMomentum([]float64{100, 101}, 5); got != 0 {
		t.Errorf("expected 0 during warm-up, got %f", got)
	}
	if got := CalculateMomentum([]float64{0, 0, 0, 0, 0, 0}, 5); got != 0 {
		t.Errorf("expected 0 on a zero base price, got %f", got)
	}
}

func TestDetectLateralMarket(t *testing.T) {
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 100 + 0.01*float64(i%2)
	}
	if !DetectLateralMarket(flat, 20, 0.005) {
		t.Error("expected a near-flat series to read as lateral")
	}

	trending := make([]float64, 30)
	price := 100.0
	for i := range trending {
		trending[i] = price
		price *= 1.01
	}
	if DetectLateralMarket(trending, 20, 0.005) {
		t.Error("expected a 1 percent-per-bar trend to not read as lateral")
	}
}

func TestDetectLateralMarket_InsufficientData(t *testing.T) {
	if DetectLateralMarket([]float64{100}, 20, 0.005) {
		t.Error("expected false during warm-up")
	}
}

func TestRangeFraction(t *testing.T) {
	highs := []float64{101, 102, 110, 103}
	lows := []float64{99, 100, 101, 100}
	closes := []float64{100, 101, 105, 102}
	got := RangeFraction(highs, lows, closes, 4)
	want := (110.0 - 99.0) / 102.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected range fraction %f, got %f", want, got)
	}
	if got := RangeFraction(highs[:1], lows[:1], closes[:1], 4); got != 0 {
		t.Errorf("expected 0 during warm-up, got %f", got)
	}
}
