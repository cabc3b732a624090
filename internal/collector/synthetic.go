package collector

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Shape selects the price path the synthetic fetcher generates.
type Shape string

const (
	ShapeUptrend   Shape = "uptrend"
	ShapeDowntrend Shape = "downtrend"
	ShapeFlat      Shape = "flat"
	ShapeChoppy    Shape = "choppy"
)

// SyntheticFetcher produces deterministic candle series for development runs
// and tests. It is a fixture collaborator: it never lives inside the engine
// and real market adapters replace it behind the Fetcher interface.
type SyntheticFetcher struct {
	Shape      Shape
	BasePrice  float64
	BaseVolume float64
	Seed       int64
	Start      time.Time
}

// NewSyntheticFetcher creates a fixture fetcher with sane defaults.
func NewSyntheticFetcher(shape Shape, seed int64) *SyntheticFetcher {
	return &SyntheticFetcher{
		Shape:      shape,
		BasePrice:  50000,
		BaseVolume: 1000,
		Seed:       seed,
		Start:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *SyntheticFetcher) Name() string { return "synthetic:" + string(f.Shape) }

// Fetch generates `limit` one-interval bars ending at Start+limit intervals.
// The same seed and parameters always produce the same series.
func (f *SyntheticFetcher) Fetch(_ context.Context, _ string, interval string, limit int) ([]model.Candle, error) {
	step, err := time.ParseDuration(interval)
	if err != nil {
		step = time.Minute
	}
	rng := rand.New(rand.NewSource(f.Seed))
	candles := make([]model.Candle, 0, limit)
	price := f.BasePrice

	for i := 0; i < limit; i++ {
		var drift, noise float64
		switch f.Shape {
		case ShapeUptrend:
			drift = f.BasePrice * 0.0015
			noise = f.BasePrice * 0.0004 * rng.NormFloat64()
		case ShapeDowntrend:
			drift = -f.BasePrice * 0.0015
			noise = f.BasePrice * 0.0004 * rng.NormFloat64()
		case ShapeChoppy:
			drift = f.BasePrice * 0.004 * math.Sin(float64(i)/3)
			noise = f.BasePrice * 0.002 * rng.NormFloat64()
		case ShapeFlat:
			drift, noise = 0, 0
		}

		open := price
		close := price + drift + noise
		hi, lo := open, close
		if lo > hi {
			hi, lo = lo, hi
		}
		spread := math.Abs(drift) + math.Abs(noise)
		high := hi + spread*0.2
		low := lo - spread*0.2

		volume := f.BaseVolume
		if f.Shape != ShapeFlat {
			volume += f.BaseVolume * 0.3 * rng.Float64()
		}

		candles = append(candles, model.Candle{
			Time:   f.Start.Add(time.Duration(i) * step),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		})
		price = close
	}
	return candles, nil
}
