package calculator

// CalculateStochastic computes the stochastic oscillator: %K over a rolling
// periodK window, %D as the SMA of %K over periodD. Returns the neutral 50/50
// on insufficient data; a zero high-low range also yields 50 (resolved
// convention, applied consistently).
func CalculateStochastic(highs, lows, closes []float64, periodK, periodD int) (k, d float64) {
	if periodK <= 0 || periodD <= 0 || len(closes) < periodK {
		return 50, 50
	}

	kValues := make([]float64, 0, len(closes)-periodK+1)
	for i := periodK - 1; i < len(closes); i++ {
		hh, ll := highs[i-periodK+1], lows[i-periodK+1]
		for j := i - periodK + 2; j <= i; j++ {
			if highs[j] > hh {
				hh = highs[j]
			}
			if lows[j] < ll {
				ll = lows[j]
			}
		}
		if hh == ll {
			kValues = append(kValues, 50)
			continue
		}
		kValues = append(kValues, (closes[i]-ll)/(hh-ll)*100)
	}

	k = kValues[len(kValues)-1]
	d, err := CalculateSMA(kValues, periodD)
	if err != nil {
		d = k
	}
	return k, d
}

// CalculateWilliamsR computes Williams %R over the trailing `period` bars:
// ((highestHigh - lastClose) / (highestHigh - lowestLow)) * -100, in the
// range [-100, 0]. Returns the neutral -50 on insufficient data or zero range.
func CalculateWilliamsR(highs, lows, closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period {
		return -50
	}
	start := len(closes) - period
	hh, ll := highs[start], lows[start]
	for i := start + 1; i < len(closes); i++ {
		if highs[i] > hh {
			hh = highs[i]
		}
		if lows[i] < ll {
			ll = lows[i]
		}
	}
	if hh == ll {
		return -50
	}
	return (hh - closes[len(closes)-1]) / (hh - ll) * -100
}
