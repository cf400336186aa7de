// Package tui provides a live terminal view of a running blend loop.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
	"github.com/san-kum/blendlab/internal/loop"
	"github.com/san-kum/blendlab/internal/viz"
)

const barWidth = 41 // odd so zero sits on the center column

type model struct {
	scenario  string
	ctl       *blend.Control[drive.Vector]
	clock     *loop.Clock
	observers []loop.Observer[drive.Vector]
	dt        float64
	limit     float64

	paused bool
	out    drive.Vector
	hasOut bool
	cycles int
	empty  int

	width  int
	height int
}

// NewLive builds the live view. The clock must be the one the blend's
// sources are bound to; the view advances it each frame.
func NewLive(scenario string, ctl *blend.Control[drive.Vector], clock *loop.Clock, observers []loop.Observer[drive.Vector], dt, limit float64) tea.Model {
	return model{
		scenario:  scenario,
		ctl:       ctl,
		clock:     clock,
		observers: observers,
		dt:        dt,
		limit:     limit,
		width:     80,
		height:    24,
	}
}

// Run starts the live view and blocks until the user quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return m.tick() }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.dt*float64(time.Second)), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.clock.Reset()
			m.cycles = 0
			m.empty = 0
			m.out = drive.Zero
			m.hasOut = false
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			m = m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) step() model {
	t := m.clock.Now()
	out, ok := m.ctl.Evaluate()
	m.cycles++

	if ok {
		for _, obs := range m.observers {
			obs.OnCycle(out, t)
		}
		m.out = out
		m.hasOut = true
	} else {
		m.empty++
	}

	m.clock.Advance(m.dt)
	return m
}

func (m model) View() string {
	var b strings.Builder

	status := viz.Positive.Render("running")
	if m.paused {
		status = viz.Warn.Render("paused")
	}

	b.WriteString(viz.Title.Render("blendlab live"))
	b.WriteString("  ")
	b.WriteString(viz.Label.Render(m.scenario))
	b.WriteString("  ")
	b.WriteString(status)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s   %s %d   %s %d\n\n",
		viz.Label.Render("t"),
		viz.Value.Render(fmt.Sprintf("%7.2fs", m.clock.Now())),
		viz.Label.Render("cycles"),
		m.cycles,
		viz.Label.Render("empty"),
		m.empty,
	))

	if !m.hasOut {
		b.WriteString(viz.Label.Render("  no output yet\n"))
	} else {
		labels := drive.Labels()
		for i, f := range m.out.Fields() {
			b.WriteString(fmt.Sprintf("  %-9s %s %s\n",
				labels[i],
				m.bar(f),
				viz.Value.Render(fmt.Sprintf("%+.3f", f)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(viz.Hint.Render("  space pause · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

// bar renders v on a fixed-width gauge spanning [-limit, limit], with
// the zero mark at the center column.
func (m model) bar(v float64) string {
	cells := make([]rune, barWidth)
	for i := range cells {
		cells[i] = '·'
	}
	center := barWidth / 2
	cells[center] = '|'

	frac := v / m.limit
	if frac > 1 {
		frac = 1
	}
	if frac < -1 {
		frac = -1
	}

	pos := center + int(math.Round(frac*float64(center)))
	step := 1
	if pos < center {
		step = -1
	}
	for i := center + step; step > 0 && i <= pos || step < 0 && i >= pos; i += step {
		cells[i] = '█'
	}

	s := string(cells)
	if v >= 0 {
		return viz.Positive.Render(s)
	}
	return viz.Negative.Render(s)
}
