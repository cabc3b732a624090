package model

import "errors"

// Error taxonomy for the engine. Indicator-level numeric edge cases (zero
// range, zero average loss) are handled with epsilon floors or documented
// neutral defaults and never surface as errors.
var (
	// ErrInvalidCandle marks a malformed bar: the bar is rejected and the
	// series is left untouched.
	ErrInvalidCandle = errors.New("invalid candle")

	// ErrInsufficientData means a component cannot run at all (e.g. an empty
	// series). Individual indicators degrade to neutral defaults instead.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrFetchFailed wraps a data-retrieval failure; the cycle reports an
	// ERROR signal and the consecutive-error counter is incremented.
	ErrFetchFailed = errors.New("data fetch failed")

	// ErrCircuitOpen is returned while the runner's breaker is open after
	// repeated consecutive failures.
	ErrCircuitOpen = errors.New("circuit breaker open")
)
