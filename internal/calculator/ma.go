package calculator

import "errors"

// CalculateSMA computes the simple moving average of the last `period` values.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// CalculateEMASeries computes the exponential moving average series: seeded
// with the SMA of the first `period` values, then smoothed with
// k = 2/(period+1). The returned series has len(values)-period+1 entries,
// aligned so the last entry corresponds to the last input value.
func CalculateEMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(values) < period {
		return nil, errors.New("not enough data for EMA calculation")
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)

	k := 2.0 / float64(period+1)
	out := make([]float64, 0, len(values)-period+1)
	out = append(out, seed)
	ema := seed
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out = append(out, ema)
	}
	return out, nil
}

// CalculateEMA returns the last value of the EMA series.
func CalculateEMA(values []float64, period int) (float64, error) {
	series, err := CalculateEMASeries(values, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

// LinearRegressionSlope fits a least-squares line through the values (x = 0..n-1)
// and returns its slope per bar. Returns 0 for fewer than two points.
func LinearRegressionSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denom
}
