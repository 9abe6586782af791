// Package layout computes panel and button geometry for a canvas of a given size.
package layout

import "math"

const (
	PanelCols  = 5
	PanelRows  = 2
	PanelCount = PanelCols * PanelRows
)

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Panel is an answer target labeled Value.
type Panel struct {
	Rect
	Value int
}

// Screen is a canvas size.
type Screen struct {
	W, H float64
}

// Base is the shorter side, used to scale text and cells.
func (s Screen) Base() float64 {
	return math.Min(s.W, s.H)
}

// Panels lays out the ten answer panels as a 5x2 grid in the lower part of the screen.
func (s Screen) Panels() []Panel {
	marginX := s.W * 0.05
	gridW := s.W * 0.90
	gap := math.Max(6, gridW*0.015)
	cellW := (gridW - gap*(PanelCols-1)) / PanelCols
	cellH := math.Min(s.Base()*0.12, cellW*0.75)
	topY := s.H * 0.60

	panels := make([]Panel, 0, PanelCount)
	n := 1
	for r := 0; r < PanelRows; r++ {
		for c := 0; c < PanelCols; c++ {
			panels = append(panels, Panel{
				Rect: Rect{
					X: marginX + float64(c)*(cellW+gap),
					Y: topY + float64(r)*(cellH+gap),
					W: cellW,
					H: cellH,
				},
				Value: n,
			})
			n++
		}
	}
	return panels
}

// PanelAt returns the value of the panel under (x, y).
func PanelAt(panels []Panel, x, y float64) (int, bool) {
	for _, p := range panels {
		if p.Contains(x, y) {
			return p.Value, true
		}
	}
	return 0, false
}

// DebugButton is the always-visible debug toggle in the top-left corner.
func (s Screen) DebugButton() Rect {
	return Rect{X: 16, Y: 14, W: 140, H: 38}
}

// StartButton sits below the start screen title.
func (s Screen) StartButton() Rect {
	w := math.Min(280, s.W*0.6)
	return Rect{X: (s.W - w) / 2, Y: s.H * 0.55, W: w, H: 60}
}

// RetryButton sits near the bottom of the result screen.
func (s Screen) RetryButton() Rect {
	w := math.Min(260, s.W*0.5)
	return Rect{X: (s.W - w) / 2, Y: s.H * 0.76, W: w, H: 56}
}

// BackButton sits directly under RetryButton.
func (s Screen) BackButton() Rect {
	retry := s.RetryButton()
	return Rect{X: retry.X, Y: retry.Y + retry.H + 14, W: retry.W, H: 52}
}

// HistoryTop is the y coordinate of the first history row on the result screen.
func (s Screen) HistoryTop() float64 {
	return s.H * 0.44
}

// HistoryLineHeight is the spacing between history rows.
func (s Screen) HistoryLineHeight() float64 {
	return math.Max(24, s.Base()*0.035)
}

// ExportButton sits at the right of the history heading.
func (s Screen) ExportButton() Rect {
	w := math.Min(260, s.W*0.45)
	y := s.HistoryTop() - s.HistoryLineHeight()*0.9 - 6
	return Rect{X: s.W - w - 16, Y: y, W: w, H: 44}
}

// ClearButton sits under ExportButton.
func (s Screen) ClearButton() Rect {
	export := s.ExportButton()
	return Rect{X: export.X, Y: export.Y + export.H + 8, W: export.W, H: 44}
}

// ConfirmDialog is the centered box asking whether to delete all history.
func (s Screen) ConfirmDialog() Rect {
	w := math.Min(420, s.W*0.8)
	h := math.Min(200, s.H*0.4)
	return Rect{X: (s.W - w) / 2, Y: (s.H - h) / 2, W: w, H: h}
}

// ConfirmYes and ConfirmNo split the bottom of ConfirmDialog.
func (s Screen) ConfirmYes() Rect {
	d := s.ConfirmDialog()
	w := (d.W - 48) / 2
	return Rect{X: d.X + 16, Y: d.Y + d.H - 60, W: w, H: 44}
}

func (s Screen) ConfirmNo() Rect {
	yes := s.ConfirmYes()
	return Rect{X: yes.X + yes.W + 16, Y: yes.Y, W: yes.W, H: yes.H}
}
