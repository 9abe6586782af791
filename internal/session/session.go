// Package session drives the start, countdown, playing and result lifecycle.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/tapquiz/internal/model"
	"github.com/verte-zerg/tapquiz/internal/round"
)

const (
	DefaultRoundDuration     = 60 * time.Second
	DefaultCountdownDuration = 3 * time.Second
)

// State is the current phase of the session.
type State int

const (
	StateStart State = iota
	StateCountdown
	StatePlaying
	StateResult
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateResult:
		return "result"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Recorder receives one entry per completed round.
type Recorder interface {
	Append(ctx context.Context, entry model.HistoryEntry)
}

// Machine owns the round and moves it through the session states.
// All time-dependent calls take the current time from the caller.
type Machine struct {
	recorder       Recorder
	round          *round.Round
	state          State
	countdown      time.Duration
	countdownStart time.Time
	lastEntry      model.HistoryEntry
	hasLast        bool
}

// New constructs a machine in StateStart. Zero durations fall back to the defaults.
func New(gen round.ProblemSource, recorder Recorder, cfg model.GameConfig) *Machine {
	budget := cfg.RoundDuration
	if budget <= 0 {
		budget = DefaultRoundDuration
	}
	countdown := cfg.CountdownDuration
	if countdown <= 0 {
		countdown = DefaultCountdownDuration
	}
	return &Machine{
		recorder:  recorder,
		round:     round.New(gen, budget),
		state:     StateStart,
		countdown: countdown,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Round exposes the round for display.
func (m *Machine) Round() *round.Round {
	return m.round
}

// LastEntry returns the entry written for the most recent completed round.
func (m *Machine) LastEntry() (model.HistoryEntry, bool) {
	return m.lastEntry, m.hasLast
}

// HandleBegin leaves the start screen and begins the countdown.
func (m *Machine) HandleBegin(now time.Time) bool {
	if m.state != StateStart {
		return false
	}
	m.beginCountdown(now)
	return true
}

// HandleRetry starts a fresh round from the result screen.
func (m *Machine) HandleRetry(now time.Time) bool {
	if m.state != StateResult {
		return false
	}
	m.beginCountdown(now)
	return true
}

// HandleBack returns from the result screen to the start screen.
func (m *Machine) HandleBack() bool {
	if m.state != StateResult {
		return false
	}
	m.state = StateStart
	return true
}

// HandlePanelTap submits value as an answer while playing. It reports whether
// the tap was accepted, not whether it was correct.
func (m *Machine) HandlePanelTap(value int) bool {
	if m.state != StatePlaying {
		return false
	}
	m.round.SubmitAnswer(value)
	return true
}

// Tick advances time-driven transitions. Call it once per frame.
func (m *Machine) Tick(now time.Time) {
	switch m.state {
	case StateCountdown:
		if now.Sub(m.countdownStart) >= m.countdown {
			m.round.StartClock(now)
			m.state = StatePlaying
		}
	case StatePlaying:
		if m.round.IsExpired(now) {
			m.finish(now)
		}
	case StateStart, StateResult:
	}
}

// CountdownNumber returns the whole seconds left in the countdown and whether
// a number should be shown. Zero is never shown.
func (m *Machine) CountdownNumber(now time.Time) (int, bool) {
	if m.state != StateCountdown {
		return 0, false
	}
	elapsed := now.Sub(m.countdownStart)
	if elapsed >= m.countdown {
		return 0, false
	}
	top := int((m.countdown + time.Second - 1) / time.Second)
	n := top - int(elapsed/time.Second)
	if n < 1 {
		return 0, false
	}
	return n, true
}

// Remaining returns the time left in the round while playing and zero otherwise.
func (m *Machine) Remaining(now time.Time) time.Duration {
	if m.state != StatePlaying {
		return 0
	}
	return m.round.RemainingTime(now)
}

func (m *Machine) beginCountdown(now time.Time) {
	m.round.Start(now)
	m.countdownStart = now
	m.state = StateCountdown
}

func (m *Machine) finish(now time.Time) {
	if m.round.Complete() {
		score := m.round.Score()
		entry := model.HistoryEntry{
			Timestamp: now.UnixMilli(),
			Correct:   score.Correct,
			Total:     score.Total,
			Accuracy:  score.Accuracy(),
		}
		m.lastEntry = entry
		m.hasLast = true
		if m.recorder != nil {
			m.recorder.Append(context.Background(), entry)
		}
	}
	m.state = StateResult
}
