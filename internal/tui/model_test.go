package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tapquiz/internal/history"
	"github.com/verte-zerg/tapquiz/internal/model"
	"github.com/verte-zerg/tapquiz/internal/session"
)

type fixedSource struct{}

func (fixedSource) Generate() model.Problem {
	return model.Problem{A: 2, B: 3, Op: model.OpAdd, Answer: 5}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, exportDir string) (*Model, *fakeClock, *history.Store) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	hist := history.Open(context.Background(), nil, history.WithLogger(func(string, ...any) {}))
	machine := session.New(fixedSource{}, hist, model.GameConfig{
		RoundDuration:     10 * time.Second,
		CountdownDuration: 3 * time.Second,
	})
	m := NewModel(machine, hist, Options{ExportDir: exportDir, Clock: clock.Now})
	return m, clock, hist
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (c *fakeClock) advance(m *Model, d time.Duration) {
	c.now = c.now.Add(d)
	m.Update(tickMsg(c.now))
}

func TestFullRoundRecordsHistory(t *testing.T) {
	m, clock, hist := newTestModel(t, t.TempDir())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.machine.State(); got != session.StateCountdown {
		t.Fatalf("expected countdown, got %s", got)
	}
	clock.advance(m, 3*time.Second)
	if got := m.machine.State(); got != session.StatePlaying {
		t.Fatalf("expected playing, got %s", got)
	}

	m.Update(runeKey("5"))
	m.Update(runeKey("0"))
	score := m.machine.Round().Score()
	if score.Correct != 1 || score.Total != 2 {
		t.Fatalf("unexpected score %d/%d", score.Correct, score.Total)
	}

	clock.advance(m, 10*time.Second)
	if got := m.machine.State(); got != session.StateResult {
		t.Fatalf("expected result, got %s", got)
	}
	if hist.Len() != 1 {
		t.Fatalf("expected one history entry, got %d", hist.Len())
	}
	view := m.View()
	if !strings.Contains(view, "Score: 1 / 2") || !strings.Contains(view, "50.0%") {
		t.Fatalf("result view missing score: %q", view)
	}
}

func TestAnswerKeysIgnoredDuringCountdown(t *testing.T) {
	m, _, _ := newTestModel(t, t.TempDir())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runeKey("5"))
	if total := m.machine.Round().Score().Total; total != 0 {
		t.Fatalf("expected no answers during countdown, got %d", total)
	}
}

func TestCountdownView(t *testing.T) {
	m, clock, _ := newTestModel(t, t.TempDir())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if view := m.View(); !strings.Contains(view, "3") {
		t.Fatalf("expected countdown 3, got %q", view)
	}
	clock.advance(m, 2500*time.Millisecond)
	if view := m.View(); !strings.Contains(view, "1") {
		t.Fatalf("expected countdown 1, got %q", view)
	}
}

func TestPlayingViewShowsExpressionAndPanels(t *testing.T) {
	m, clock, _ := newTestModel(t, t.TempDir())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	clock.advance(m, 3*time.Second)
	view := m.View()
	if !strings.Contains(view, "2 + 3") {
		t.Fatalf("expected expression in view, got %q", view)
	}
	if !strings.Contains(view, "10") {
		t.Fatalf("expected panel 10 in view, got %q", view)
	}
}

func TestDebugHeaderShowsRemainingTime(t *testing.T) {
	m, clock, _ := newTestModel(t, t.TempDir())
	m.Update(runeKey("d"))
	if !m.debug {
		t.Fatalf("expected debug mode on")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	clock.advance(m, 3*time.Second)
	clock.advance(m, 1500*time.Millisecond)
	header := m.renderHeader(clock.now)
	if !strings.Contains(header, "9s left") {
		t.Fatalf("expected 9s left, got %q", header)
	}
	if !strings.Contains(header, "Trials 0") {
		t.Fatalf("expected trial count, got %q", header)
	}
}

func finishRound(m *Model, clock *fakeClock) {
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	clock.advance(m, 3*time.Second)
	m.Update(runeKey("5"))
	clock.advance(m, 10*time.Second)
}

func TestExportRequiresDebug(t *testing.T) {
	dir := t.TempDir()
	m, clock, _ := newTestModel(t, dir)
	finishRound(m, clock)

	m.Update(runeKey("e"))
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no export outside debug mode, got %d files", len(files))
	}

	m.Update(runeKey("d"))
	m.Update(runeKey("e"))
	want := filepath.Join(dir, history.ExportFileName(clock.now))
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected export at %s: %v", want, err)
	}
	if !strings.Contains(m.notice, want) {
		t.Fatalf("expected notice to name export path, got %q", m.notice)
	}
}

func TestClearAsksForConfirmation(t *testing.T) {
	m, clock, hist := newTestModel(t, t.TempDir())
	finishRound(m, clock)
	m.Update(runeKey("d"))

	m.Update(runeKey("x"))
	if !m.confirmClear {
		t.Fatalf("expected confirmation prompt")
	}
	m.Update(runeKey("n"))
	if m.confirmClear || hist.Len() != 1 {
		t.Fatalf("expected cancel to keep history, len=%d", hist.Len())
	}

	m.Update(runeKey("x"))
	if view := m.View(); !strings.Contains(view, "Delete all history?") {
		t.Fatalf("expected modal in view, got %q", view)
	}
	m.Update(runeKey("y"))
	if hist.Len() != 0 {
		t.Fatalf("expected history cleared, len=%d", hist.Len())
	}
	if m.machine.State() != session.StateResult {
		t.Fatalf("clear should not leave the result screen")
	}
}

func TestRetryAndBack(t *testing.T) {
	m, clock, _ := newTestModel(t, t.TempDir())
	finishRound(m, clock)

	m.Update(runeKey("b"))
	if got := m.machine.State(); got != session.StateStart {
		t.Fatalf("expected start after back, got %s", got)
	}
	finishRound(m, clock)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.machine.State(); got != session.StateCountdown {
		t.Fatalf("expected countdown after retry, got %s", got)
	}
}

func TestCtrlCQuitsWhilePlaying(t *testing.T) {
	m, clock, _ := newTestModel(t, t.TempDir())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	clock.advance(m, 3*time.Second)

	_, cmd := m.Update(runeKey("q"))
	if cmd != nil {
		t.Fatalf("q should not quit mid-round")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestPanelValue(t *testing.T) {
	cases := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"9", 9, true},
		{"0", 10, true},
		{"a", 0, false},
		{"10", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := panelValue(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("panelValue(%q) = %d,%v want %d,%v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRemainingSecondsRoundsUp(t *testing.T) {
	if got := remainingSeconds(1500 * time.Millisecond); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := remainingSeconds(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestFormatRoundLength(t *testing.T) {
	if got := formatRoundLength(time.Minute); got != "1 minute" {
		t.Fatalf("unexpected %q", got)
	}
	if got := formatRoundLength(2 * time.Minute); got != "2 minutes" {
		t.Fatalf("unexpected %q", got)
	}
	if got := formatRoundLength(45 * time.Second); got != "45 seconds" {
		t.Fatalf("unexpected %q", got)
	}
}
