package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tapquiz/internal/model"
)

const timeLayout = "2006/01/02 15:04"

// FormatEntry renders one history row as "YYYY/MM/DD HH:MM   ok / total   (acc%)".
func FormatEntry(e model.HistoryEntry) string {
	return fmt.Sprintf("%s   %d / %d   (%s)", e.Time().Format(timeLayout), e.Correct, e.Total, FormatAccuracy(e.Accuracy))
}

// FormatAccuracy rounds to one decimal place, e.g. "66.7%".
func FormatAccuracy(acc float64) string {
	return fmt.Sprintf("%.1f%%", acc)
}

// RenderRecent prints up to n most recent rounds, newest first, as an aligned table.
func RenderRecent(w io.Writer, entries []model.HistoryEntry, n int) error {
	if len(entries) == 0 || n <= 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}
	if _, err := fmt.Fprintln(w, "Recent Rounds"); err != nil {
		return err
	}
	headers := []string{"#", "Finished", "Correct", "Total", "Accuracy"}
	rows := make([][]string, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		e := entries[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Time().Format(timeLayout),
			fmt.Sprintf("%d", e.Correct),
			fmt.Sprintf("%d", e.Total),
			FormatAccuracy(e.Accuracy),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
