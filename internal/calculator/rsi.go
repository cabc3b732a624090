package calculator

// epsLoss is the divide-by-zero floor for the average loss. When the average
// loss sits below it, RS is treated as infinite and RSI saturates at 100.
// (Resolved convention: always 100 on zero loss, never avgGain-dependent.)
const epsLoss = 1e-8

// CalculateRSI computes the Wilder-smoothed RSI over the given period.
// Requires at least period+1 closes; returns the neutral 50 otherwise.
func CalculateRSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50
	}

	// Initial average gain/loss over the first `period` changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for the remaining bars.
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss < epsLoss {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// CalculateRSISeries computes the RSI at every bar from index `period`
// onward, using one forward Wilder pass. The returned series is aligned so
// its last entry corresponds to the last close; it has len(closes)-period
// entries (empty series when data is insufficient).
func CalculateRSISeries(closes []float64, period int) []float64 {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, len(closes)-period)
	out = append(out, rsiFrom(avgGain, avgLoss))
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiFrom(avgGain, avgLoss))
	}
	return out
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss < epsLoss {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
