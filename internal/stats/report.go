// Package stats contains statistics calculations and reporting.
package stats

import "github.com/verte-zerg/tapquiz/internal/model"

// Report contains precomputed data for stats rendering.
type Report struct {
	Entries []model.HistoryEntry
	Summary Summary
	Curve   []float64
}

// BuildReport restricts entries to the last rounds (0 keeps all) and
// smooths the accuracy curve over window rounds.
func BuildReport(entries []model.HistoryEntry, last, window int) Report {
	if last > 0 && len(entries) > last {
		entries = entries[len(entries)-last:]
	}
	return Report{
		Entries: entries,
		Summary: Summarize(entries),
		Curve:   MovingAverage(Accuracies(entries), window),
	}
}
