// Package viz renders a running simulation in the terminal.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/moldyn/internal/control"
	"github.com/san-kum/moldyn/internal/forces"
	"github.com/san-kum/moldyn/internal/integrators"
	"github.com/san-kum/moldyn/internal/system"
)

const (
	graphHeight     = 10
	graphWidth      = 70
	historyCapacity = 600
	stepsPerFrame   = 10
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the simulation between frames and plots the temperature trace.
type Model struct {
	sys        *system.System
	integrator integrators.Integrator
	controls   []control.Control
	field      forces.Field

	step    int
	steps   int
	t       float64
	history []float64
	done    bool
}

func NewModel(sys *system.System, integrator integrators.Integrator, field forces.Field, controls []control.Control, steps int) Model {
	for _, c := range controls {
		c.Setup(sys)
	}
	return Model{
		sys:        sys,
		integrator: integrator,
		controls:   controls,
		field:      field,
		steps:      steps,
		history:    []float64{sys.Temperature()},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case TickMsg:
		if m.done {
			return m, nil
		}
		for i := 0; i < stepsPerFrame && m.step < m.steps; i++ {
			m.integrator.Step(m.sys)
			m.t += m.integrator.Timestep()
			for _, c := range m.controls {
				c.Control(m.sys)
			}
			m.step++
		}
		m.history = append(m.history, m.sys.Temperature())
		if len(m.history) > historyCapacity {
			m.history = m.history[len(m.history)-historyCapacity:]
		}
		if m.step >= m.steps {
			m.done = true
			for _, c := range m.controls {
				c.Finish(m.sys)
			}
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render("moldyn live")

	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d / %d", m.step, m.steps)),
		labelStyle.Render("time"), valueStyle.Render(fmt.Sprintf("%.4f", m.t)),
		labelStyle.Render("temperature"), valueStyle.Render(fmt.Sprintf("%.4f", m.sys.Temperature())),
		labelStyle.Render("total energy"), valueStyle.Render(fmt.Sprintf("%.6f", m.sys.KineticEnergy()+m.field.Energy(m.sys))),
	)

	graph := graphStyle.Render(asciigraph.Plot(m.history,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("temperature"),
	))

	help := helpStyle.Render("q: quit")
	if m.done {
		help = helpStyle.Render("run complete, q: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, stats, graph, help)
}
