package statsui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tapquiz/internal/model"
)

func fixture() []model.HistoryEntry {
	return []model.HistoryEntry{
		{Timestamp: 1700000000000, Correct: 8, Total: 10, Accuracy: 80},
		{Timestamp: 1700000100000, Correct: 5, Total: 10, Accuracy: 50},
		{Timestamp: 1700000200000, Correct: 9, Total: 9, Accuracy: 100},
	}
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestCurveWindowSteps(t *testing.T) {
	cases := []struct {
		in, next, prev int
	}{
		{1, 5, 1},
		{5, 10, 1},
		{7, 10, 5},
		{10, 15, 5},
	}
	for _, tc := range cases {
		if got := nextCurveWindow(tc.in); got != tc.next {
			t.Fatalf("nextCurveWindow(%d) = %d, want %d", tc.in, got, tc.next)
		}
		if got := prevCurveWindow(tc.in); got != tc.prev {
			t.Fatalf("prevCurveWindow(%d) = %d, want %d", tc.in, got, tc.prev)
		}
	}
}

func TestOverviewShowsSummary(t *testing.T) {
	m := sized(NewModel(fixture(), Config{CurveWindow: 2}))
	view := m.View()
	for _, want := range []string{"Overview", "Rounds", "22 / 29", "9 correct"} {
		if !strings.Contains(view, want) {
			t.Fatalf("overview missing %q:\n%s", want, view)
		}
	}
}

func TestRoundsTabNewestFirst(t *testing.T) {
	m := sized(NewModel(fixture(), Config{CurveWindow: 2}))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabRounds {
		t.Fatalf("expected rounds tab, got %d", m.activeTab)
	}
	view := m.View()
	first := strings.Index(view, "100.0%")
	last := strings.Index(view, "80.0%")
	if first < 0 || last < 0 || first > last {
		t.Fatalf("expected newest round first:\n%s", view)
	}
}

func TestLastLimitsRounds(t *testing.T) {
	m := NewModel(fixture(), Config{Last: 1, CurveWindow: 1})
	if m.report.Summary.Rounds != 1 {
		t.Fatalf("expected 1 round, got %d", m.report.Summary.Rounds)
	}
	if rows := m.rounds.Rows(); len(rows) != 1 || rows[0][0] != "3" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestEmptyHistory(t *testing.T) {
	m := sized(NewModel(nil, Config{}))
	if !strings.Contains(m.View(), "No rounds recorded yet.") {
		t.Fatalf("expected empty notice")
	}
	if m.cfg.CurveWindow != 1 {
		t.Fatalf("expected window to default to 1, got %d", m.cfg.CurveWindow)
	}
}

func TestWindowKeysAdjustCurve(t *testing.T) {
	m := NewModel(fixture(), Config{CurveWindow: 5})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("=")})
	if m.cfg.CurveWindow != 10 {
		t.Fatalf("expected window 10, got %d", m.cfg.CurveWindow)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	if m.cfg.CurveWindow != 1 {
		t.Fatalf("expected window 1, got %d", m.cfg.CurveWindow)
	}
}
