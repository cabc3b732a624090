package model

// VolumeProfile summarizes how traded volume distributed across price levels
// in the analysis window.
type VolumeProfile struct {
	POC           float64 // point of control: bin price with maximum volume
	ValueAreaHigh float64
	ValueAreaLow  float64
}

// LiquidityZones holds pivot-derived support and resistance means.
type LiquidityZones struct {
	Support    float64
	Resistance float64
}

// IndicatorSnapshot is the full set of indicator values computed from a
// candle series as of its last bar. Recomputed from scratch every analysis
// cycle; nothing here survives between cycles.
type IndicatorSnapshot struct {
	Close     float64
	Volume    float64
	AvgVolume float64

	RSI       float64
	StochK    float64
	StochD    float64
	WilliamsR float64

	MACDLine      float64
	MACDSignal    float64
	MACDHistogram float64

	EMAShort float64
	EMAMid   float64
	EMALong  float64
	EMA200   float64

	ATR                 float64
	SuperTrendValue     float64
	SuperTrendDirection int // +1 up, -1 down, 0 unknown

	VWAP     float64
	Momentum float64 // fractional close change over the momentum period
	ADX      float64

	Profile   VolumeProfile
	Liquidity LiquidityZones

	// Key levels over the breakout window (window extremes, not pivots).
	KeySupport    float64
	KeyResistance float64

	BullishGap bool // unfilled bullish fair value gap near the series tail
	BearishGap bool

	Lateral bool
}
