package recorder

import (
	"time"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Entry is one recorded analysis outcome.
type Entry struct {
	ID         string
	At         time.Time
	RecordedAt time.Time
	Signal     model.Signal
	Score      int
	Trend      model.TrendAssessment
}

// Recorder keeps the rolling display history of recent signals. There is no
// durable persistence: the engine's contract stops at in-memory rolling
// buffers, and anything longer-lived belongs to an external collaborator.
type Recorder interface {
	Record(result *model.AnalysisResult) Entry
	History() []Entry // newest first
	Close() error
}
