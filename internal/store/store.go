package store

import (
	"fmt"
	"sync"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Store is a fixed-capacity, time-ordered rolling buffer of candles for one
// timeframe. One writer (the data-ingestion collaborator) appends; any number
// of readers take consistent snapshot copies for the duration of a cycle.
type Store struct {
	mu       sync.RWMutex
	interval string
	capacity int
	candles  []model.Candle
}

// New creates a store for the given timeframe with the given capacity.
func New(interval string, capacity int) *Store {
	if capacity <= 0 {
		capacity = 200
	}
	return &Store{
		interval: interval,
		capacity: capacity,
		candles:  make([]model.Candle, 0, capacity),
	}
}

// Interval returns the timeframe this store tracks (e.g. "1m").
func (s *Store) Interval() string { return s.interval }

// Append validates and appends one candle, evicting the oldest bar when the
// capacity is exceeded. The series is left untouched on any validation error.
func (s *Store) Append(c model.Candle) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.candles); n > 0 && !c.Time.After(s.candles[n-1].Time) {
		return fmt.Errorf("%w: timestamp %s not after last bar %s",
			model.ErrInvalidCandle, c.Time.Format("15:04:05"), s.candles[n-1].Time.Format("15:04:05"))
	}
	s.candles = append(s.candles, c)
	if len(s.candles) > s.capacity {
		s.candles = s.candles[len(s.candles)-s.capacity:]
	}
	return nil
}

// ReplaceAll swaps the whole series for a freshly polled batch. The batch is
// validated first; on any invalid bar the existing series is kept.
func (s *Store) ReplaceAll(batch []model.Candle) error {
	for i, c := range batch {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		if i > 0 && !c.Time.After(batch[i-1].Time) {
			return fmt.Errorf("bar %d: %w: non-increasing timestamp", i, model.ErrInvalidCandle)
		}
	}
	if len(batch) > s.capacity {
		batch = batch[len(batch)-s.capacity:]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candles = append(s.candles[:0:0], batch...)
	return nil
}

// Len returns the number of buffered candles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candles)
}

// Series returns an ordered copy of the buffered candles. Indicator functions
// receive this copy and never see a mutating view.
func (s *Store) Series() []model.Candle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Candle, len(s.candles))
	copy(out, s.candles)
	return out
}

// Last returns the most recent candle, or false when the store is empty.
func (s *Store) Last() (model.Candle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.candles) == 0 {
		return model.Candle{}, false
	}
	return s.candles[len(s.candles)-1], true
}

// Closes extracts the close series from a candle slice.
func Closes(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high series from a candle slice.
func Highs(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low series from a candle slice.
func Lows(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts the volume series from a candle slice.
func Volumes(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}
