package calculator

// MACDResult holds the last values of the MACD line, signal line and
// histogram.
type MACDResult struct {
	Line      float64
	Signal    float64
	Histogram float64
}

// CalculateMACD computes MACD(fast, slow, signal): the fast and slow EMA
// series are aligned by truncating the fast series' extra warm-up, the MACD
// line is their difference, and the signal line is the EMA of the MACD line.
// Returns a zero result when there is not enough data for the slow EMA plus
// the signal EMA.
func CalculateMACD(closes []float64, fast, slow, signal int) MACDResult {
	if fast <= 0 || slow <= 0 || signal <= 0 || fast >= slow {
		return MACDResult{}
	}
	fastSeries, err := CalculateEMASeries(closes, fast)
	if err != nil {
		return MACDResult{}
	}
	slowSeries, err := CalculateEMASeries(closes, slow)
	if err != nil {
		return MACDResult{}
	}

	// The slow series is shorter; drop the fast series' head so both end at
	// the last close.
	offset := len(fastSeries) - len(slowSeries)
	macdLine := make([]float64, len(slowSeries))
	for i := range slowSeries {
		macdLine[i] = fastSeries[i+offset] - slowSeries[i]
	}

	signalSeries, err := CalculateEMASeries(macdLine, signal)
	if err != nil {
		return MACDResult{}
	}

	line := macdLine[len(macdLine)-1]
	sig := signalSeries[len(signalSeries)-1]
	return MACDResult{Line: line, Signal: sig, Histogram: line - sig}
}
