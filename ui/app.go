package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hiromitsuiwata/ttop/config"
	"github.com/hiromitsuiwata/ttop/engine"
	"github.com/hiromitsuiwata/ttop/model"
)

type tickMsg time.Time

type collectMsg struct {
	snap *model.Snapshot
	err  error
}

// Model is the bubbletea model driving the dashboard. One cycle runs
// collect, render, then a timed wait for the remainder of the tick
// interval; key input arrives at any point in the cycle.
type Model struct {
	src      engine.Source
	profile  config.Profile
	interval time.Duration

	width  int
	height int

	snap   *model.Snapshot
	ranked []engine.ProcessRow

	lastTick time.Time // pacing anchor for the current cycle
	err      error
	quitting bool
}

// NewModel creates the TUI model. The pacing clock is anchored at
// construction time; the first collection starts from Init.
func NewModel(src engine.Source, prof config.Profile, interval time.Duration) Model {
	return Model{
		src:      src,
		profile:  prof,
		interval: interval,
		lastTick: time.Now(),
	}
}

// Err returns the fatal error that stopped the dashboard, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return collectOnce(m.src)
}

func collectOnce(src engine.Source) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.Refresh()
		return collectMsg{snap: snap, err: err}
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// remainingTimeout returns how long the loop may still wait in the
// current cycle: the interval minus the time already spent since the
// anchor, floored at zero.
func remainingTimeout(now, anchor time.Time, interval time.Duration) time.Duration {
	remaining := interval - now.Sub(anchor)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		// every other key is ignored

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// advance the anchor only when a full interval really elapsed
		if time.Since(m.lastTick) >= m.interval {
			m.lastTick = time.Now()
		}
		return m, collectOnce(m.src)

	case collectMsg:
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.snap = msg.snap
		m.ranked = engine.RankTop(msg.snap.Processes, m.profile.TopN)
		return m, tick(remainingTimeout(time.Now(), m.lastTick, m.interval))
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap == nil {
		return "Collecting first sample..."
	}

	rects := ComputeLayout(m.profile, m.width, m.height)

	var sb strings.Builder
	sb.WriteString("\n") // top margin
	for i, band := range m.profile.Bands {
		r := rects[i]
		if r.H == 0 {
			continue
		}
		var panel string
		switch band.Kind {
		case config.PanelCPU:
			panel = renderCPU(m.snap, r)
		case config.PanelMemory:
			panel = renderMemory(m.snap, r)
		case config.PanelProcesses:
			panel = renderProcesses(m.ranked, r)
		case config.PanelHostInfo:
			panel = renderHostInfo(m.snap.Host, r)
		}
		sb.WriteString(indent(panel, r.X))
		sb.WriteString("\n")
	}
	return sb.String()
}

// indent prefixes every line of s with x spaces.
func indent(s string, x int) string {
	if x <= 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", x)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
