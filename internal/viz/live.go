// Package viz renders a live terminal view of a single droplet run: the
// bulk temperature and FLA number density traces plus the instantaneous
// model state.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/sim"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives one droplet through the host step on every UI tick.
type Model struct {
	host *sim.Host
	d    *droplet.Droplet
	t    float64
	dt   float64

	tempHistory []float64
	densHistory []float64
	running     bool
	stepErr     error
	fluid       string
}

func NewModel(host *sim.Host, d *droplet.Droplet, dt float64, fluid string) Model {
	return Model{
		host:        host,
		d:           d,
		dt:          dt,
		fluid:       fluid,
		running:     true,
		tempHistory: make([]float64, 0, historyCapacity),
		densHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && m.stepErr == nil {
			if _, err := m.host.StepDroplet(m.d, m.t, m.dt); err != nil {
				m.stepErr = err
				m.running = false
			} else {
				m.t += m.dt
				m.tempHistory = push(m.tempHistory, m.d.Temperature)
				m.densHistory = push(m.densHistory, m.d.Jacobian.NumberDensity)
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func push(hist []float64, v float64) []float64 {
	if len(hist) >= historyCapacity {
		hist = hist[1:]
	}
	return append(hist, v)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("flavap live — %s droplet", m.fluid)))
	b.WriteString("\n")

	if len(m.tempHistory) > 1 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.tempHistory,
			asciigraph.Height(8), asciigraph.Width(64),
			asciigraph.Caption("bulk temperature [K]"))))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.densHistory,
			asciigraph.Height(6), asciigraph.Width(64),
			asciigraph.Caption("number density [-]"))))
		b.WriteString("\n")
	}

	b.WriteString(m.statsView())

	if m.stepErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("step error: " + m.stepErr.Error()))
	}
	b.WriteString(helpStyle.Render("\nspace pause · q quit"))
	return b.String()
}

func (m Model) statsView() string {
	ts := m.d.Thermal
	js := m.d.Jacobian
	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%.4f s", m.t)},
		{"diameter", fmt.Sprintf("%.2f µm", m.d.Diameter*1e6)},
		{"bulk T", fmt.Sprintf("%.2f K", m.d.Temperature)},
		{"surface T", fmt.Sprintf("%.2f K", ts.Profile.Surface())},
		{"BM / BT", fmt.Sprintf("%.4g / %.4g", ts.BM, ts.BT)},
		{"Nusselt", fmt.Sprintf("%.3f", ts.Nusselt)},
		{"evap rate", fmt.Sprintf("%.3g kg/s", ts.EvaporationRate)},
		{"det J", fmt.Sprintf("%.4g", js.Det)},
		{"caustics", fmt.Sprintf("%d", js.SignChanges)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return statsStyle.Render(b.String())
}
