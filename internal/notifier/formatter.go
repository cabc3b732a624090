package notifier

import (
	"fmt"
	"strings"

	"github.com/DiegoTx1/TX-2.0/internal/model"
	"github.com/DiegoTx1/TX-2.0/internal/recorder"
)

// FormatReport renders one cycle's result plus the rolling signal history as
// a plain-text block for terminals and chat collaborators.
func FormatReport(result *model.AnalysisResult, history []recorder.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("TX-2.0 | %s\n\n", result.At.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Signal: %s (%d%%)\n", result.Signal, result.Score))
	b.WriteString(fmt.Sprintf("Trend:  %s (%.0f%%)\n\n", result.Trend.Label, result.Trend.Strength))

	b.WriteString("Criteria:\n")
	for _, c := range result.Criteria {
		b.WriteString("  - ")
		b.WriteString(c)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("\nRecent signals:\n")
		for _, e := range history {
			b.WriteString(fmt.Sprintf("  %s  %s (%d%%)\n", e.At.Format("15:04:05"), e.Signal, e.Score))
		}
	}

	return b.String()
}
