// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tapquiz/internal/history"
	"github.com/verte-zerg/tapquiz/internal/session"
	statsPkg "github.com/verte-zerg/tapquiz/internal/stats"
)

const (
	frameInterval = 100 * time.Millisecond
	recentRounds  = 10
)

type tickMsg time.Time

// Options configures the model.
type Options struct {
	RoundDuration time.Duration
	ExportDir     string
	Debug         bool
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Model implements the Bubble Tea game UI.
type Model struct {
	machine   *session.Machine
	history   *history.Store
	exportDir string
	roundLen  time.Duration
	clock     func() time.Time

	keys         keyMap
	help         help.Model
	historyTable table.Model

	debug        bool
	confirmClear bool
	notice       string

	width  int
	height int
}

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subtitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	expressionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(1, 4)
	countdownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(1, 4)
	panelStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Width(6).
			Align(lipgloss.Center)
	panelKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	debugOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00A06E")).Bold(true)
	debugOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Padding(1, 2)
)

// NewModel constructs a game TUI model around a session machine and its history.
func NewModel(machine *session.Machine, hist *history.Store, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	roundLen := opts.RoundDuration
	if roundLen <= 0 {
		roundLen = machine.Round().Budget()
	}
	m := &Model{
		machine:   machine,
		history:   hist,
		exportDir: opts.ExportDir,
		roundLen:  roundLen,
		clock:     clock,
		keys:      defaultKeyMap(),
		help:      help.New(),
		debug:     opts.Debug,
	}
	m.historyTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Finished", Width: 16},
			{Title: "Score", Width: 9},
			{Title: "Accuracy", Width: 8},
		}),
		table.WithHeight(recentRounds+1),
	)
	m.refreshHistoryTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) advance(now time.Time) {
	before := m.machine.State()
	m.machine.Tick(now)
	if before == session.StatePlaying && m.machine.State() == session.StateResult {
		m.refreshHistoryTable()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.clock()
	if m.confirmClear {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.history.Clear(context.Background())
			m.refreshHistoryTable()
			m.notice = "History cleared."
			m.confirmClear = false
		case key.Matches(msg, m.keys.No):
			m.confirmClear = false
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Debug) {
		m.debug = !m.debug
		return m, nil
	}

	switch m.machine.State() {
	case session.StateStart:
		switch {
		case key.Matches(msg, m.keys.Begin):
			m.notice = ""
			m.machine.HandleBegin(now)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	case session.StateCountdown:
		// No input while counting down.
	case session.StatePlaying:
		if key.Matches(msg, m.keys.Answer) {
			if v, ok := panelValue(msg.String()); ok {
				m.machine.HandlePanelTap(v)
			}
		}
	case session.StateResult:
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.notice = ""
			m.machine.HandleRetry(now)
		case key.Matches(msg, m.keys.Back):
			m.notice = ""
			m.machine.HandleBack()
		case m.debug && key.Matches(msg, m.keys.Export):
			m.exportHistory(now)
		case m.debug && key.Matches(msg, m.keys.Clear):
			m.confirmClear = true
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) exportHistory(now time.Time) {
	path, err := history.ExportToDir(m.exportDir, m.history.ExportSnapshot(now), now)
	if err != nil {
		logErrf("failed to export history: %v\n", err)
		m.notice = "Export failed."
		return
	}
	m.notice = "Exported " + path
}

func (m *Model) refreshHistoryTable() {
	recent := m.history.Recent(recentRounds)
	rows := make([]table.Row, 0, len(recent))
	for _, e := range recent {
		rows = append(rows, table.Row{
			e.Time().Format("2006/01/02 15:04"),
			fmt.Sprintf("%d / %d", e.Correct, e.Total),
			statsPkg.FormatAccuracy(e.Accuracy),
		})
	}
	m.historyTable.SetRows(rows)
}

// View implements tea.Model.
func (m *Model) View() string {
	now := m.clock()
	var body string
	switch m.machine.State() {
	case session.StateStart:
		body = m.viewStart()
	case session.StateCountdown:
		body = m.viewCountdown(now)
	case session.StatePlaying:
		body = m.viewPlaying()
	case session.StateResult:
		body = m.viewResult()
	}
	if m.confirmClear {
		body = modalStyle.Render("Delete all history?\n\n" + m.help.ShortHelpView([]key.Binding{m.keys.Yes, m.keys.No}))
	}
	header := m.renderHeader(now)
	footer := m.renderFooter()
	if m.width == 0 || m.height < 5 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	bodyHeight := m.height - 2
	return header + "\n" +
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body) + "\n" +
		lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *Model) viewStart() string {
	title := titleStyle.Render("Arithmetic: every answer is 1 to 10")
	sub := subtitleStyle.Render(fmt.Sprintf("Answer as many as you can in %s", formatRoundLength(m.roundLen)))
	lines := []string{title, sub}
	if m.notice != "" {
		lines = append(lines, "", footerStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) viewCountdown(now time.Time) string {
	n, ok := m.machine.CountdownNumber(now)
	if !ok {
		return ""
	}
	return countdownStyle.Render(fmt.Sprintf("%d", n))
}

func (m *Model) viewPlaying() string {
	expr := expressionStyle.Render(m.machine.Round().Problem().Expression())
	return lipgloss.JoinVertical(lipgloss.Center, expr, renderPanels())
}

func (m *Model) viewResult() string {
	score := m.machine.Round().Score()
	lines := []string{
		titleStyle.Render("Time's up!"),
		fmt.Sprintf("Score: %d / %d", score.Correct, score.Total),
		fmt.Sprintf("Accuracy: %s", statsPkg.FormatAccuracy(score.Accuracy())),
	}
	if m.debug {
		lines = append(lines, "", subtitleStyle.Render("Past rounds"), m.historyTable.View())
	}
	if m.notice != "" {
		lines = append(lines, "", footerStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderPanels() string {
	rows := make([]string, 0, 2)
	for r := 0; r < 2; r++ {
		cells := make([]string, 0, 5)
		for c := 0; c < 5; c++ {
			v := r*5 + c + 1
			hint := fmt.Sprintf("%d", v%10)
			cells = append(cells, panelStyle.Render(fmt.Sprintf("%d\n%s", v, panelKeyStyle.Render("["+hint+"]"))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderHeader(now time.Time) string {
	label := debugOffStyle.Render("DEBUG: OFF")
	if m.debug {
		label = debugOnStyle.Render("DEBUG: ON")
	}
	if !m.debug {
		return label
	}
	segments := []string{label}
	switch m.machine.State() {
	case session.StatePlaying:
		score := m.machine.Round().Score()
		segments = append(segments,
			fmt.Sprintf("%ds left", remainingSeconds(m.machine.Remaining(now))),
			fmt.Sprintf("Score %d / %d", score.Correct, score.Total),
			fmt.Sprintf("Trials %d", m.history.Len()),
		)
	case session.StateResult:
		segments = append(segments, fmt.Sprintf("Trials %d", m.history.Len()))
	}
	return strings.Join(segments, "  ")
}

func (m *Model) renderFooter() string {
	var bindings []key.Binding
	switch m.machine.State() {
	case session.StateStart:
		bindings = []key.Binding{m.keys.Begin, m.keys.Debug, m.keys.Quit}
	case session.StatePlaying:
		bindings = []key.Binding{m.keys.Answer, m.keys.Debug}
	case session.StateResult:
		bindings = []key.Binding{m.keys.Retry, m.keys.Back, m.keys.Debug}
		if m.debug {
			bindings = append(bindings, m.keys.Export, dangerBinding(m.keys.Clear))
		}
		bindings = append(bindings, m.keys.Quit)
	}
	if len(bindings) == 0 {
		return ""
	}
	return m.help.ShortHelpView(bindings)
}

func dangerBinding(b key.Binding) key.Binding {
	h := b.Help()
	return key.NewBinding(key.WithKeys(b.Keys()...), key.WithHelp(h.Key, dangerStyle.Render(h.Desc)))
}

// remainingSeconds rounds up so the display reads 1 until the round actually ends.
func remainingSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

func formatRoundLength(d time.Duration) string {
	if d%time.Minute == 0 {
		n := int(d / time.Minute)
		if n == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", n)
	}
	return fmt.Sprintf("%d seconds", int(d.Round(time.Second)/time.Second))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
