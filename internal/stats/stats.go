// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/tapquiz/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates completed rounds.
type Summary struct {
	Rounds       int
	Correct      int
	Total        int
	MeanAccuracy float64
	BestCorrect  int
	BestAccuracy float64
}

// OverallAccuracy returns correct answers over all answers across rounds.
func (s Summary) OverallAccuracy() float64 {
	return model.Score{Correct: s.Correct, Total: s.Total}.Accuracy()
}

// Summarize folds history entries into a Summary.
func Summarize(entries []model.HistoryEntry) Summary {
	var sum Summary
	if len(entries) == 0 {
		return sum
	}
	var accSum float64
	for _, e := range entries {
		sum.Rounds++
		sum.Correct += e.Correct
		sum.Total += e.Total
		accSum += e.Accuracy
		if e.Correct > sum.BestCorrect {
			sum.BestCorrect = e.Correct
		}
		if e.Accuracy > sum.BestAccuracy {
			sum.BestAccuracy = e.Accuracy
		}
	}
	sum.MeanAccuracy = accSum / float64(sum.Rounds)
	return sum
}

// Accuracies extracts the per-round accuracy series.
func Accuracies(entries []model.HistoryEntry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Accuracy
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the summary block and an accuracy trend line that fits width.
func RenderSummary(w io.Writer, report Report, width int) error {
	if report.Summary.Rounds == 0 {
		_, err := fmt.Fprintln(w, "No rounds recorded yet.")
		return err
	}
	sum := report.Summary
	lines := []string{
		"Summary",
		fmt.Sprintf("Rounds: %d", sum.Rounds),
		fmt.Sprintf("Answers: %d / %d", sum.Correct, sum.Total),
		fmt.Sprintf("Overall Accuracy: %.1f%%", sum.OverallAccuracy()),
		fmt.Sprintf("Avg Round Accuracy: %.1f%%", sum.MeanAccuracy),
		fmt.Sprintf("Best Round: %d correct", sum.BestCorrect),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(report.Curve) > 1 {
		curve := report.Curve
		if limit := SparkWidthFor(width); len(curve) > limit {
			curve = curve[len(curve)-limit:]
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", trendLabel, Sparkline(curve)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
