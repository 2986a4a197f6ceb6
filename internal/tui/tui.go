// Package tui hosts the clock in a terminal viewport.
package tui

import (
	"fmt"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/style"
)

var (
	helpStyle = lipgloss.NewStyle().Faint(true)

	palette = map[style.Color]lipgloss.TerminalColor{
		style.ColorForeground: lipgloss.NoColor{},
		style.ColorPrimary:    lipgloss.Color("39"),
		style.ColorMuted:      lipgloss.Color("245"),
		style.ColorError:      lipgloss.Color("196"),
		style.ColorSuccess:    lipgloss.Color("42"),
	}
)

// tickMsg carries a moment published by the display.
type tickMsg engine.Moment

// Labels holds the translated strings shown around the clock.
type Labels struct {
	Help    string
	Loading string
}

// Model is a Bubble Tea model centering one clock row in the terminal.
type Model struct {
	display *engine.Display
	ticks   chan engine.Moment
	done    chan struct{}
	stop    sync.Once
	log     *slog.Logger

	dateStyle lipgloss.Style
	timeStyle lipgloss.Style
	gap       int
	labels    Labels

	width, height int
	moment        engine.Moment
	renders       uint64
}

// New builds an unmounted model. classes extends the default styling.
func New(clock engine.Clock, labels Labels, classes ...string) *Model {
	rowSpec := style.Resolve(style.Row(classes...))
	timeSpec := style.Resolve(style.TimeSegment(classes...))

	if labels.Help == "" {
		labels.Help = config.FallbackTermHelp
	}

	m := &Model{
		display:   engine.NewDisplay(clock),
		ticks:     make(chan engine.Moment, config.ChannelBufferSize),
		done:      make(chan struct{}),
		log:       slog.With(config.LogKeyComponent, config.CompTUI),
		dateStyle: lipglossStyle(rowSpec),
		timeStyle: lipglossStyle(timeSpec),
		gap:       rowSpec.Gap,
		labels:    labels,
	}

	m.display.OnChange(func(mo engine.Moment) {
		// Keep only the freshest moment if the program lags behind.
		select {
		case m.ticks <- mo:
		default:
			select {
			case <-m.ticks:
			default:
			}
			select {
			case m.ticks <- mo:
			default:
			}
		}
	})
	return m
}

// lipglossStyle maps a resolved style onto terminal attributes.
// Terminals have a single fixed-width face, so size and family are ignored.
func lipglossStyle(spec style.Spec) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(spec.Bold).Italic(spec.Italic)
	if c, ok := palette[spec.Color]; ok {
		s = s.Foreground(c)
	}
	return s
}

// Display exposes the underlying clock state.
func (m *Model) Display() *engine.Display {
	return m.display
}

// Renders counts tick-driven re-renders applied to the view.
func (m *Model) Renders() uint64 {
	return m.renders
}

// waitForTick blocks until the next moment, or returns nil once the model is torn down.
func (m *Model) waitForTick() tea.Msg {
	select {
	case mo := <-m.ticks:
		return tickMsg(mo)
	case <-m.done:
		return nil
	}
}

// Init mounts the display and starts listening for ticks.
func (m *Model) Init() tea.Cmd {
	m.display.Mount()
	m.moment = m.display.Current()

	m.log.Info(config.MsgTermStart,
		config.LogKeyMoment, m.moment.String(),
		config.LogKeyState, m.display.State().String())
	return m.waitForTick
}

// Close unmounts the display and releases any pending tick wait. It is idempotent.
func (m *Model) Close() {
	m.stop.Do(func() {
		m.display.Unmount()
		close(m.done)
		m.log.Info(config.MsgTermStop,
			config.LogKeyUpdates, m.display.Updates(),
			config.LogKeyState, m.display.State().String())
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		if m.display.State() != engine.StateMounted {
			return m, nil
		}
		m.moment = engine.Moment(msg)
		m.renders++
		return m, m.waitForTick
	}
	return m, nil
}

// Row renders the two segments without centering.
func (m *Model) Row() string {
	if m.moment.IsZero() {
		return m.labels.Loading
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.dateStyle.Render(m.moment.Date()),
		lipgloss.NewStyle().Width(m.gap).Render(""),
		m.timeStyle.Render(m.moment.TimeOfDay()),
	)
}

// View centers the row in the full terminal viewport.
func (m *Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center, m.Row(), "", helpStyle.Render(m.labels.Help))
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the terminal program and blocks until the user quits.
// The display is unmounted on every exit path.
func Run(m *Model, opts ...tea.ProgramOption) error {
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		m.log.Error(config.ErrTermProgram, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrTermProgram, err)
	}
	return nil
}
