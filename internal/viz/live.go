package viz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/metrics"
	"github.com/san-kum/clockgrid/internal/sim"
)

const (
	tickRate        = time.Second / 60
	historyCapacity = 600
)

type TickMsg time.Time

type Options struct {
	Theme        string
	MaxFrameTime float64
	Logger       *slog.Logger
}

// Model steps the grid once per tick with a fixed frame time.
type Model struct {
	driver   *sim.Driver
	renderer *GridRenderer
	order    *metrics.PhaseOrder
	spread   *metrics.SpeedSpread
	polarity *metrics.Polarity
	running  bool
	err      error
}

func NewModel(grid *dynamo.Grid, opts Options) Model {
	r := NewGridRenderer(GetTheme(opts.Theme))
	d := sim.New(grid, r, sim.FixedClock(tickRate.Seconds()))
	d.SetLogger(opts.Logger)
	d.SetMaxFrameTime(opts.MaxFrameTime)

	m := Model{
		driver:   d,
		renderer: r,
		order:    metrics.NewPhaseOrder(historyCapacity),
		spread:   metrics.NewSpeedSpread(),
		polarity: metrics.NewPolarity(),
		running:  true,
	}
	d.AddMetric(m.order)
	d.AddMetric(m.spread)
	d.AddMetric(m.polarity)

	r.Render(grid)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.renderer.Theme = NextTheme(m.renderer.Theme.Name)
			m.renderer.Render(m.driver.Grid())
		}
	case TickMsg:
		if m.running {
			if err := m.driver.Frame(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, tick()
	}
	return m, nil
}

// Err reports the step failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// Result reports frames and metric values so far.
func (m Model) Result() *sim.Result { return m.driver.Result() }

func (m Model) View() string {
	res := m.driver.Result()
	theme := m.renderer.Theme

	var s strings.Builder
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).MarginBottom(1)
	w, h := m.driver.Grid().Dims()
	s.WriteString(header.Render(fmt.Sprintf("CLOCKGRID %dx%d", w, h)) + "\n")

	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n\n")
	}

	if hist := m.order.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Phase order"))
		s.WriteString(graphStyle.Foreground(theme.Accent).Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", res.Frames))
	row("Time", fmt.Sprintf("%.2fs", res.SimTime))
	row("Phase order", fmt.Sprintf("%.3f", m.order.Value()))
	row("Speed spread", fmt.Sprintf("%.3f turn/s", m.spread.Value()/dynamo.TwoPi))
	row("Clockwise", ProgressBar(m.polarity.Value(), 16, lipgloss.NewStyle().Foreground(SpeedColor(theme, 1)))+
		fmt.Sprintf(" %.0f%%", 100*m.polarity.Value()))
	row("Theme", theme.Name)

	s.WriteString(helpStyle.Render("SP:Pause T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(m.renderer.String()), statsStyle.Render(s.String()))
}

// Run blocks until the user quits, ctx is done or a step fails.
func Run(ctx context.Context, grid *dynamo.Grid, opts Options) (*sim.Result, error) {
	p := tea.NewProgram(NewModel(grid, opts), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		if err == nil {
			err = m.Err()
		}
		return m.Result(), err
	}
	return nil, err
}
