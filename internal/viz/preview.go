package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/sim"
)

const (
	historyCapacity = 600
	defaultFPS      = 30
)

type TickMsg time.Time

// PreviewConfig holds what the preview shows besides the frame itself.
type PreviewConfig struct {
	Title string
	FPS   int
	// Energy, when set, feeds the energy panel and chart.
	Energy dynamo.Hamiltonian
}

// Model runs a Loop inside a Bubble Tea program. Each tick renders the
// current state into the terminal display and advances one step, exactly
// like an iteration of the device loop.
type Model struct {
	loop          *sim.Loop
	term          *TermDisplay
	initial       sim.State
	cfg           PreviewConfig
	running       bool
	energyHistory []float64
	initialEnergy float64
}

// NewModel wires a preview around loop, whose renderer must draw into term.
// initial is cloned on every reset.
func NewModel(loop *sim.Loop, term *TermDisplay, initial sim.State, cfg PreviewConfig) Model {
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.Title == "" {
		cfg.Title = "three-body"
	}
	m := Model{
		loop:          loop,
		term:          term,
		initial:       initial.Clone(),
		cfg:           cfg,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.initialEnergy = m.energy(initial.Bodies)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.loop.Tick()

	if m.cfg.Energy == nil {
		return
	}
	m.energyHistory = append(m.energyHistory, m.energy(m.loop.State().Bodies))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// reset restarts from the initial conditions with empty trails.
func (m *Model) reset() {
	m.loop.Reset(m.initial.Clone())
	m.energyHistory = m.energyHistory[:0]
}

func (m Model) energy(b dynamo.Bodies) float64 {
	if m.cfg.Energy == nil {
		return 0
	}
	return m.cfg.Energy.Energy(b)
}

// Running reports whether the simulation advances on each tick.
func (m Model) Running() bool { return m.running }

func (m Model) State() sim.State { return m.loop.State() }

// View renders the last flushed frame next to the stats panel.
func (m Model) View() string {
	st := m.loop.State()
	canvasView := canvasStyle.Render(strings.TrimRight(m.term.String(), "\n"))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Title)) + "\n")

	switch {
	case !st.Bodies.IsValid():
		s.WriteString(statusWarn.Render("DEGENERATE") + "\n")
	case m.running:
		s.WriteString(statusRunning.Render("RUNNING") + "\n")
	default:
		s.WriteString(statusPaused.Render("PAUSED") + "\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", st.Time)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", st.Step)) + "\n")
	if m.cfg.Energy != nil {
		e := m.energy(st.Bodies)
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.5f", e)) + "\n")
		if m.initialEnergy != 0 {
			drift := math.Abs(e-m.initialEnergy) / math.Abs(m.initialEnergy)
			s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.2e", drift)) + "\n")
		}
	}
	for _, b := range st.Bodies {
		s.WriteString(labelStyle.Render(b.Role.String()) + valueStyle.Render(b.Position.String()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
