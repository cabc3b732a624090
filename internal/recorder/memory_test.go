package recorder

import (
	"testing"
	"time"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

func result(at time.Time, sig model.Signal, score int) *model.AnalysisResult {
	return &model.AnalysisResult{
		Signal: sig,
		Score:  score,
		Trend:  model.TrendAssessment{Label: model.TrendUp, Strength: 50},
		At:     at,
	}
}

func TestMemoryRecorder_NewestFirst(t *testing.T) {
	r := NewMemoryRecorder(8)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.Record(result(base, model.SignalWait, 40))
	r.Record(result(base.Add(time.Minute), model.SignalCall, 85))

	history := r.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Signal != model.SignalCall {
		t.Errorf("expected the newest entry first, got %s", history[0].Signal)
	}
	if history[1].Signal != model.SignalWait {
		t.Errorf("expected the oldest entry last, got %s", history[1].Signal)
	}
}

func TestMemoryRecorder_EvictsOldest(t *testing.T) {
	r := NewMemoryRecorder(3)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r.Record(result(base.Add(time.Duration(i)*time.Minute), model.SignalWait, 40+i))
	}
	history := r.History()
	if len(history) != 3 {
		t.Fatalf("expected capacity 3, got %d", len(history))
	}
	if history[0].Score != 44 {
		t.Errorf("expected the newest score 44 first, got %d", history[0].Score)
	}
	if history[2].Score != 42 {
		t.Errorf("expected the oldest surviving score 42 last, got %d", history[2].Score)
	}
}

func TestMemoryRecorder_EntryIDsUnique(t *testing.T) {
	r := NewMemoryRecorder(8)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := r.Record(result(base, model.SignalWait, 40))
	b := r.Record(result(base.Add(time.Minute), model.SignalWait, 41))
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty entry IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	r.Record(result(time.Now(), model.SignalCall, 90))
	if got := r.History(); got != nil {
		t.Errorf("noop recorder must keep nothing, got %v", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
