// Package canvas drives a session from pointer input on a pixel canvas and
// describes each frame as a list of shapes.
package canvas

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/tapquiz/internal/history"
	"github.com/verte-zerg/tapquiz/internal/layout"
	"github.com/verte-zerg/tapquiz/internal/session"
	"github.com/verte-zerg/tapquiz/internal/stats"
)

const recentRounds = 10

// Options configures a Controller.
type Options struct {
	ExportDir string
	Debug     bool
	// Logf receives export failures. Defaults to discarding them.
	Logf func(format string, args ...any)
}

// Controller maps clicks to session events and renders frames.
type Controller struct {
	machine   *session.Machine
	history   *history.Store
	exportDir string
	logf      func(format string, args ...any)

	screen       layout.Screen
	debug        bool
	confirmClear bool
	notice       string
}

// NewController constructs a controller with a default 900x700 canvas.
func NewController(machine *session.Machine, hist *history.Store, opts Options) *Controller {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Controller{
		machine:   machine,
		history:   hist,
		exportDir: opts.ExportDir,
		logf:      logf,
		screen:    layout.Screen{W: 900, H: 700},
		debug:     opts.Debug,
	}
}

// Resize updates the canvas size used for layout and hit-testing.
func (c *Controller) Resize(w, h float64) {
	if w > 0 && h > 0 {
		c.screen = layout.Screen{W: w, H: h}
	}
}

// Tick advances time-driven transitions.
func (c *Controller) Tick(now time.Time) {
	c.machine.Tick(now)
}

// Click handles a pointer press at canvas coordinates (x, y).
func (c *Controller) Click(x, y float64, now time.Time) {
	s := c.screen
	if c.confirmClear {
		switch {
		case s.ConfirmYes().Contains(x, y):
			c.history.Clear(context.Background())
			c.notice = "History cleared."
			c.confirmClear = false
		case s.ConfirmNo().Contains(x, y):
			c.confirmClear = false
		}
		return
	}
	if s.DebugButton().Contains(x, y) {
		c.debug = !c.debug
		return
	}

	switch c.machine.State() {
	case session.StateStart:
		if s.StartButton().Contains(x, y) {
			c.notice = ""
			c.machine.HandleBegin(now)
		}
	case session.StatePlaying:
		if v, ok := layout.PanelAt(s.Panels(), x, y); ok {
			c.machine.HandlePanelTap(v)
		}
	case session.StateResult:
		switch {
		case c.debug && s.ExportButton().Contains(x, y):
			c.export(now)
		case c.debug && s.ClearButton().Contains(x, y):
			c.confirmClear = true
		case s.RetryButton().Contains(x, y):
			c.notice = ""
			c.machine.HandleRetry(now)
		case s.BackButton().Contains(x, y):
			c.notice = ""
			c.machine.HandleBack()
		}
	case session.StateCountdown:
	}
}

func (c *Controller) export(now time.Time) {
	path, err := history.ExportToDir(c.exportDir, c.history.ExportSnapshot(now), now)
	if err != nil {
		c.logf("failed to export history: %v\n", err)
		c.notice = "Export failed."
		return
	}
	c.notice = "Exported " + path
}

// Scene describes the frame at now, back to front.
func (c *Controller) Scene(now time.Time) []Shape {
	s := c.screen
	base := s.Base()
	var out []Shape

	switch c.machine.State() {
	case session.StateStart:
		out = append(out,
			label(s.W/2, s.H*0.30, base*0.07, Foreground, "Arithmetic Quiz"),
			label(s.W/2, s.H*0.40, base*0.035, Muted, fmt.Sprintf("Every answer is 1 to 10. You have %s.", roundLength(c.machine.Round().Budget()))),
		)
		out = append(out, button(s.StartButton(), Accent, base*0.04, "START")...)
	case session.StateCountdown:
		if n, ok := c.machine.CountdownNumber(now); ok {
			out = append(out, label(s.W/2, s.H/2, base*0.25, Foreground, fmt.Sprintf("%d", n)))
		}
	case session.StatePlaying:
		out = append(out, label(s.W/2, s.H*0.35, base*0.10, Foreground, c.machine.Round().Problem().Expression()))
		for _, p := range s.Panels() {
			out = append(out, button(p.Rect, PanelFill, math.Min(p.H*0.45, base*0.06), fmt.Sprintf("%d", p.Value))...)
		}
		if c.debug {
			score := c.machine.Round().Score()
			secs := int(math.Ceil(c.machine.Remaining(now).Seconds()))
			out = append(out,
				label(s.W-90, 26, 18, Muted, fmt.Sprintf("Time: %ds", secs)),
				label(s.W-90, 50, 18, Muted, fmt.Sprintf("Score: %d / %d", score.Correct, score.Total)),
				label(s.W-90, 74, 18, Muted, fmt.Sprintf("Trials: %d", c.history.Len())),
			)
		}
	case session.StateResult:
		out = append(out, c.resultScene()...)
	}

	out = append(out, c.debugButton()...)
	if c.notice != "" && c.machine.State() != session.StatePlaying {
		out = append(out, label(s.W/2, s.H-18, 16, Muted, c.notice))
	}
	if c.confirmClear {
		out = append(out, c.confirmScene()...)
	}
	return out
}

func (c *Controller) resultScene() []Shape {
	s := c.screen
	base := s.Base()
	score := c.machine.Round().Score()
	out := []Shape{
		label(s.W/2, s.H*0.16, base*0.07, Foreground, "Time's up!"),
		label(s.W/2, s.H*0.26, base*0.05, Foreground, fmt.Sprintf("Score: %d / %d", score.Correct, score.Total)),
		label(s.W/2, s.H*0.33, base*0.04, Muted, "Accuracy: "+stats.FormatAccuracy(score.Accuracy())),
	}
	if c.debug {
		lh := s.HistoryLineHeight()
		top := s.HistoryTop()
		out = append(out, label(s.W*0.25, top-lh, lh*0.7, Muted, fmt.Sprintf("Past rounds (%d)", c.history.Len())))
		for i, e := range c.history.Recent(recentRounds) {
			out = append(out, label(s.W*0.25, top+float64(i)*lh, lh*0.6, Foreground, stats.FormatEntry(e)))
		}
		out = append(out, button(s.ExportButton(), Accent, 16, "Export JSON")...)
		out = append(out, button(s.ClearButton(), Danger, 16, "Clear history")...)
	}
	out = append(out, button(s.RetryButton(), Accent, base*0.035, "RETRY")...)
	out = append(out, button(s.BackButton(), PanelFill, base*0.03, "BACK")...)
	return out
}

func (c *Controller) debugButton() []Shape {
	r := c.screen.DebugButton()
	if c.debug {
		return button(r, DebugOn, 14, "DEBUG: ON")
	}
	return button(r, PanelFill, 14, "DEBUG: OFF")
}

func (c *Controller) confirmScene() []Shape {
	s := c.screen
	d := s.ConfirmDialog()
	cx, _ := d.Center()
	out := []Shape{
		fill(layout.Rect{W: s.W, H: s.H}, Overlay),
		fill(d, PanelFill),
		stroke(d, Danger),
		label(cx, d.Y+40, 20, Foreground, "Delete all history?"),
		label(cx, d.Y+70, 14, Muted, "This cannot be undone."),
	}
	out = append(out, button(s.ConfirmYes(), Danger, 16, "Delete")...)
	out = append(out, button(s.ConfirmNo(), PanelFill, 16, "Cancel")...)
	return out
}

func roundLength(d time.Duration) string {
	if d == time.Minute {
		return "1 minute"
	}
	if d%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return fmt.Sprintf("%d seconds", int(d.Round(time.Second)/time.Second))
}
