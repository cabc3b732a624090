package model

import "time"

// Signal is the engine's decision for one analysis cycle.
type Signal string

const (
	SignalCall  Signal = "CALL"
	SignalPut   Signal = "PUT"
	SignalWait  Signal = "WAIT"
	SignalError Signal = "ERROR"
)

// TrendLabel is the categorical trend state.
type TrendLabel string

const (
	TrendStrongUp   TrendLabel = "STRONG_UP"
	TrendUp         TrendLabel = "UP"
	TrendNeutral    TrendLabel = "NEUTRAL"
	TrendDown       TrendLabel = "DOWN"
	TrendStrongDown TrendLabel = "STRONG_DOWN"
	TrendSideways   TrendLabel = "SIDEWAYS"
)

// TrendAssessment combines the label with a 0-100 strength score.
type TrendAssessment struct {
	Label    TrendLabel
	Strength float64
}

// Bullish reports whether the label points up.
func (t TrendAssessment) Bullish() bool {
	return t.Label == TrendUp || t.Label == TrendStrongUp
}

// Bearish reports whether the label points down.
func (t TrendAssessment) Bearish() bool {
	return t.Label == TrendDown || t.Label == TrendStrongDown
}

// DivergenceKind classifies a price/oscillator divergence.
type DivergenceKind string

const (
	DivergenceNone          DivergenceKind = "NONE"
	DivergenceBullish       DivergenceKind = "BULLISH"
	DivergenceBearish       DivergenceKind = "BEARISH"
	DivergenceHiddenBullish DivergenceKind = "HIDDEN_BULLISH"
	DivergenceHiddenBearish DivergenceKind = "HIDDEN_BEARISH"
)

// DivergenceResult is the outcome of comparing price extrema against
// oscillator extrema over the lookback window.
type DivergenceResult struct {
	Detected bool
	Kind     DivergenceKind
}

// Regular reports a non-hidden divergence, the only kind that can trigger a
// signal on its own.
func (d DivergenceResult) Regular() bool {
	return d.Kind == DivergenceBullish || d.Kind == DivergenceBearish
}

// AnalysisResult is the sole contract handed to the rendering/alerting
// collaborator at the end of a cycle.
type AnalysisResult struct {
	Signal     Signal
	Score      int // 0..100
	Criteria   []string
	Trend      TrendAssessment
	Divergence DivergenceResult
	Snapshot   IndicatorSnapshot
	At         time.Time
	Err        string // set when Signal == ERROR
}
