package model

import (
	"fmt"
	"time"
)

// Candle represents a single OHLCV bar. Immutable once appended to a store.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body returns the absolute size of the candle body.
func (c Candle) Body() float64 {
	if c.Close >= c.Open {
		return c.Close - c.Open
	}
	return c.Open - c.Close
}

// UpperWick returns the distance from the body top to the high.
func (c Candle) UpperWick() float64 {
	top := c.Open
	if c.Close > top {
		top = c.Close
	}
	return c.High - top
}

// LowerWick returns the distance from the body bottom to the low.
func (c Candle) LowerWick() float64 {
	bottom := c.Open
	if c.Close < bottom {
		bottom = c.Close
	}
	return bottom - c.Low
}

// TypicalPrice returns (high+low+close)/3, the price used for VWAP and
// volume-profile bucketing.
func (c Candle) TypicalPrice() float64 {
	return (c.High + c.Low + c.Close) / 3
}

// Validate checks the OHLC ordering invariant and non-negative volume.
func (c Candle) Validate() error {
	lo, hi := c.Open, c.Close
	if lo > hi {
		lo, hi = hi, lo
	}
	if c.Low > lo {
		return fmt.Errorf("%w: low %.8f above body low %.8f", ErrInvalidCandle, c.Low, lo)
	}
	if c.High < hi {
		return fmt.Errorf("%w: high %.8f below body high %.8f", ErrInvalidCandle, c.High, hi)
	}
	if c.Low > c.High {
		return fmt.Errorf("%w: low %.8f above high %.8f", ErrInvalidCandle, c.Low, c.High)
	}
	if c.Volume < 0 {
		return fmt.Errorf("%w: negative volume %.8f", ErrInvalidCandle, c.Volume)
	}
	return nil
}
