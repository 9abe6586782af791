package stats

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	trendLabel          = "Accuracy Trend: "
	minSparkWidth       = 10
	terminalWidthBackup = 80
)

// SparkWidthFor returns how many sparkline cells fit next to the trend label.
func SparkWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = terminalWidthBackup
	}
	width := totalWidth - runewidth.StringWidth(trendLabel)
	if width < minSparkWidth {
		width = minSparkWidth
	}
	return width
}

// TerminalWidth returns the stdout terminal width or a fallback when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
