// Package report aggregates a session's evaluations into the final summary.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

// Summary is the final interview report. Derived, never stored: it is
// recomputed from the session on every request.
type Summary struct {
	FinalScore      float64  `json:"final_score"`
	Band            string   `json:"band"`
	Lines           []string `json:"lines"`
	OverallFeedback string   `json:"overall_feedback"`
}

// Summarize computes the average score and composes the report text.
// Scores are stored pre-normalized, so this is pure arithmetic over numbers;
// an empty session yields 0 rather than dividing by zero.
func Summarize(s *interview.Session) Summary {
	lines := make([]string, len(s.Evaluations))
	total := 0.0

	for i, eval := range s.Evaluations {
		total += eval.Score
		lines[i] = fmt.Sprintf("Q%d (%s/100): %s", i+1, formatScore(eval.Score), eval.Feedback)
	}

	avg := 0.0
	if len(s.Evaluations) > 0 {
		avg = round2(total / float64(len(s.Evaluations)))
	}

	band := Band(avg)

	var b strings.Builder
	fmt.Fprintf(&b, "Final Score: %s/100 - %s\n\n", formatScore(avg), band)
	b.WriteString("Detailed Feedback:\n")
	b.WriteString(strings.Join(lines, "\n"))

	return Summary{
		FinalScore:      avg,
		Band:            band,
		Lines:           lines,
		OverallFeedback: b.String(),
	}
}

// Band maps an average score to its qualitative rating.
func Band(avg float64) string {
	switch {
	case avg >= 90:
		return "Outstanding"
	case avg >= 80:
		return "Excellent"
	case avg >= 70:
		return "Good"
	case avg >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

func formatScore(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
