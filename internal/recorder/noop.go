package recorder

import "github.com/DiegoTx1/TX-2.0/internal/model"

// NoopRecorder discards everything; used when history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *model.AnalysisResult) Entry { return Entry{} }
func (n *NoopRecorder) History() []Entry                     { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
