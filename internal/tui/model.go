// Package tui provides an interactive terminal cube built on Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/display"
	"github.com/SeamusWaldron/slicecube/internal/notation"
)

// Player is the cube the model drives. Both *slicecube.Tracker and
// *recorder.Session satisfy it.
type Player interface {
	Apply(moves ...slicecube.Move) error
	Undo() (slicecube.Move, error)
	Cube() slicecube.Cube
	Moves() []slicecube.Move
	MoveCount() int
}

// resetter is implemented by players that can jump back to their start.
type resetter interface {
	Reset()
}

// recentMoves is how many moves the history line shows.
const recentMoves = 20

type tickMsg time.Time

// Model is the Bubble Tea model for interactive play.
type Model struct {
	player    Player
	scrambler *slicecube.Scrambler
	renderer  display.Renderer
	help      help.Model
	title     string

	now       func() time.Time
	startTime time.Time
	elapsed   time.Duration

	lastMove  string
	solved    bool
	debugMode bool
	err       error
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithScrambler sets the scrambler used by the scramble key.
func WithScrambler(s *slicecube.Scrambler) Option {
	return func(m *Model) { m.scrambler = s }
}

// WithRenderer sets how the cube is drawn.
func WithRenderer(r display.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithClock sets the time source used for move stamps and the timer.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithTitle sets the heading.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// New creates a model driving player.
func New(player Player, opts ...Option) *Model {
	m := &Model{
		player: player,
		help:   help.New(),
		title:  "Slice Cube",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scrambler == nil {
		m.scrambler = slicecube.NewScrambler()
	}
	m.startTime = m.now()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if !m.solved {
			m.elapsed = m.now().Sub(m.startTime)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Clockwise), key.Matches(msg, keys.CounterClockwise):
		if mv, ok := moveForKey(msg.String()); ok {
			m.apply(mv)
		}

	case key.Matches(msg, keys.Undo):
		mv, err := m.player.Undo()
		if err != nil {
			if !errors.Is(err, slicecube.ErrNothingToUndo) {
				m.err = err
			}
			break
		}
		m.lastMove = "undo " + mv.Notation()
		m.checkSolved()

	case key.Matches(msg, keys.Scramble):
		_, moves := m.scrambler.ScrambleSequence(m.player.Cube())
		if err := m.player.Apply(moves...); err != nil {
			m.err = err
			break
		}
		m.lastMove = fmt.Sprintf("scrambled (%d moves)", len(moves))
		m.startTime = m.now()
		m.elapsed = 0
		m.checkSolved()

	case key.Matches(msg, keys.Reset):
		m.reset()

	case key.Matches(msg, keys.Debug):
		m.debugMode = !m.debugMode
	}

	return m, nil
}

func (m *Model) apply(mv slicecube.Move) {
	if err := m.player.Apply(mv.WithTime(m.now())); err != nil {
		m.err = err
		return
	}
	m.lastMove = mv.Notation() + "  " + notation.Describe(mv)
	m.checkSolved()
}

// reset returns to the starting cube: directly when the player supports
// it, otherwise by undoing every move.
func (m *Model) reset() {
	if r, ok := m.player.(resetter); ok {
		r.Reset()
	} else {
		for m.player.MoveCount() > 0 {
			if _, err := m.player.Undo(); err != nil {
				m.err = err
				return
			}
		}
	}
	m.lastMove = "reset"
	m.startTime = m.now()
	m.elapsed = 0
	m.checkSolved()
}

func (m *Model) checkSolved() {
	m.solved = m.player.MoveCount() > 0 && m.player.Cube().IsSolved()
}

// Solved reports whether the last action left the cube solved.
func (m *Model) Solved() bool {
	return m.solved
}

// Err returns the error from the last action, if any.
func (m *Model) Err() error {
	return m.err
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Goodbye! %d moves played.\n", m.player.MoveCount())
	}

	var b strings.Builder
	c := m.player.Cube()

	b.WriteString(display.TitleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(display.StatusStyle.Render(formatElapsed(m.elapsed)))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(c))
	b.WriteString("\n")
	b.WriteString(display.StatusLine(c, m.player.MoveCount()))
	b.WriteString("\n")

	if m.lastMove != "" {
		b.WriteString("Last: " + display.MoveStyle.Render(m.lastMove) + "\n")
	}

	if moves := m.player.Moves(); len(moves) > 0 {
		b.WriteString("Moves: ")
		if len(moves) > recentMoves {
			b.WriteString("... ")
			moves = moves[len(moves)-recentMoves:]
		}
		b.WriteString(display.MoveStyle.Render(slicecube.FormatMoves(moves)))
		b.WriteString("\n")
	}

	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(display.StatusStyle.Render("DEBUG - Cube State:"))
		b.WriteString("\n")
		b.WriteString(slicecube.Render(c))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(display.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")

	return b.String()
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}

// Run starts an interactive program on the alternate screen.
func Run(player Player, opts ...Option) error {
	p := tea.NewProgram(New(player, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
