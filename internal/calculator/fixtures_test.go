package calculator

import (
	"time"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

var fixtureStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// bar builds one candle with a symmetric wick around the body.
func bar(i int, open, close, volume float64) model.Candle {
	hi, lo := open, close
	if lo > hi {
		hi, lo = lo, hi
	}
	return model.Candle{
		Time:   fixtureStart.Add(time.Duration(i) * time.Minute),
		Open:   open,
		High:   hi + 0.1,
		Low:    lo - 0.1,
		Close:  close,
		Volume: volume,
	}
}

// flatBars returns n identical zero-range candles.
func flatBars(n int, price, volume float64) []model.Candle {
	out := make([]model.Candle, n)
	for i := range out {
		out[i] = model.Candle{
			Time:   fixtureStart.Add(time.Duration(i) * time.Minute),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: volume,
		}
	}
	return out
}

// trendBars returns n candles whose close moves by step each bar.
func trendBars(n int, start, step, volume float64) []model.Candle {
	out := make([]model.Candle, n)
	price := start
	for i := range out {
		out[i] = bar(i, price, price+step, volume)
		price += step
	}
	return out
}
