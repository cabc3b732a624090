package recorder

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// MemoryRecorder keeps the last `size` entries in memory, newest first.
type MemoryRecorder struct {
	mu      sync.Mutex
	size    int
	entries []Entry
}

// NewMemoryRecorder creates a bounded in-memory recorder.
func NewMemoryRecorder(size int) *MemoryRecorder {
	if size <= 0 {
		size = 8
	}
	return &MemoryRecorder{size: size}
}

// Record stores the result, evicting the oldest entry past capacity.
func (r *MemoryRecorder) Record(result *model.AnalysisResult) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		At:         result.At,
		RecordedAt: time.Now(),
		Signal:     result.Signal,
		Score:      result.Score,
		Trend:      result.Trend,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]Entry{entry}, r.entries...)
	if len(r.entries) > r.size {
		r.entries = r.entries[:r.size]
	}
	return entry
}

// History returns a copy of the entries, newest first.
func (r *MemoryRecorder) History() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Close implements Recorder; nothing to release.
func (r *MemoryRecorder) Close() error { return nil }
