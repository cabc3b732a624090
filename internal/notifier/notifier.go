package notifier

import (
	"github.com/rs/zerolog"

	"github.com/DiegoTx1/TX-2.0/internal/model"
	"github.com/DiegoTx1/TX-2.0/internal/recorder"
)

// Notifier is the rendering/alerting collaborator boundary: it receives each
// cycle's result and the rolling history. DOM panels, chat bots and sound
// effects all live behind this interface, outside the engine.
type Notifier interface {
	Notify(result *model.AnalysisResult, history []recorder.Entry)
}

// LogNotifier renders results through the structured logger. The default
// collaborator for headless runs.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

// Notify logs the outcome at a level matching its severity. An ERROR result
// must stay visibly distinct from a stale signal.
func (n *LogNotifier) Notify(result *model.AnalysisResult, history []recorder.Entry) {
	evt := n.log.Info()
	if result.Signal == model.SignalError {
		evt = n.log.Error().Str("cause", result.Err)
	}
	evt.Str("signal", string(result.Signal)).
		Int("score", result.Score).
		Str("trend", string(result.Trend.Label)).
		Float64("trend_strength", result.Trend.Strength).
		Msg("analysis cycle")

	if result.Signal != model.SignalError {
		n.log.Debug().Msg("\n" + FormatReport(result, history))
	}
}
