package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/display"
	"github.com/SeamusWaldron/slicecube/internal/notation"
)

const (
	minSpeed = 0.25
	maxSpeed = 16
	// maxReplayGap caps the wait between two replayed moves.
	maxReplayGap = 3 * time.Second
)

type replayMoveMsg struct{ index int }

// ReplayModel plays a recorded move list back at its original pace.
type ReplayModel struct {
	start    slicecube.Cube
	moves    []slicecube.Move
	tracker  *slicecube.Tracker
	renderer display.Renderer
	title    string

	index     int
	speed     float64
	stepMode  bool
	paused    bool
	debugMode bool
	quitting  bool
}

// NewReplay creates a replay of moves applied to start.
func NewReplay(start slicecube.Cube, moves []slicecube.Move, speed float64, stepMode bool) *ReplayModel {
	if speed <= 0 {
		speed = 1
	}
	return &ReplayModel{
		start:    start,
		moves:    moves,
		tracker:  slicecube.NewTrackerFrom(start),
		title:    "Slice Cube Replay",
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
	}
}

// SetRenderer sets how the cube is drawn.
func (m *ReplayModel) SetRenderer(r display.Renderer) {
	m.renderer = r
}

// SetTitle sets the heading.
func (m *ReplayModel) SetTitle(title string) {
	m.title = title
}

// Init implements tea.Model.
func (m *ReplayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNext()
}

// delay returns how long to wait before the move at index, scaled by speed.
func (m *ReplayModel) delay(index int) time.Duration {
	if index == 0 || index >= len(m.moves) {
		return 0
	}
	prev, next := m.moves[index-1].Time, m.moves[index].Time
	if prev.IsZero() || next.IsZero() {
		return 0
	}
	gap := next.Sub(prev)
	if gap < 0 {
		gap = 0
	}
	if gap > maxReplayGap {
		gap = maxReplayGap
	}
	return time.Duration(float64(gap) / m.speed)
}

func (m *ReplayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.moves) {
		return nil
	}
	index := m.index
	return tea.Tick(m.delay(index), func(time.Time) tea.Msg {
		return replayMoveMsg{index: index}
	})
}

// step applies the next move. It reports false once the replay is done.
func (m *ReplayModel) step() bool {
	if m.index >= len(m.moves) {
		return false
	}
	// Moves come from storage and are validated on the way in.
	_ = m.tracker.Apply(m.moves[m.index])
	m.index++
	return true
}

// Update implements tea.Model.
func (m *ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.step()
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNext()
			}

		case "r":
			m.index = 0
			m.tracker = slicecube.NewTrackerFrom(m.start)

		case "d":
			m.debugMode = !m.debugMode

		case "+", "=":
			m.speed *= 2
			if m.speed > maxSpeed {
				m.speed = maxSpeed
			}

		case "-":
			m.speed /= 2
			if m.speed < minSpeed {
				m.speed = minSpeed
			}
		}

	case replayMoveMsg:
		// Ticks scheduled before a pause or reset are stale.
		if m.paused || msg.index != m.index {
			return m, nil
		}
		m.step()
		return m, m.scheduleNext()
	}

	return m, nil
}

// Index returns how many moves have been replayed.
func (m *ReplayModel) Index() int {
	return m.index
}

// Cube returns the replayed cube.
func (m *ReplayModel) Cube() slicecube.Cube {
	return m.tracker.Cube()
}

// View implements tea.Model.
func (m *ReplayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	c := m.tracker.Cube()

	b.WriteString(display.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(display.StatusStyle.Render(progress))
	fmt.Fprintf(&b, " (%.2gx speed)\n\n", m.speed)

	b.WriteString(m.renderer.Net(c))
	b.WriteString("\n")
	b.WriteString(display.StatusLine(c, m.index))
	b.WriteString("\n")

	if m.index > 0 {
		last := m.moves[m.index-1]
		b.WriteString("Last: " + display.MoveStyle.Render(last.Notation()+"  "+notation.Describe(last)) + "\n")
	}
	if m.index < len(m.moves) {
		b.WriteString("Next: " + display.StatusStyle.Render(m.moves[m.index].Notation()) + "\n")
	} else {
		b.WriteString(display.SolvedStyle.Render("End of recording") + "\n")
	}

	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(display.StatusStyle.Render("DEBUG - Cube State:"))
		b.WriteString("\n")
		b.WriteString(slicecube.Render(c))
	}

	b.WriteString("\n")
	b.WriteString(display.HelpStyle.Render("[space/n] step  [p] pause  [+/-] speed  [r] restart  [d] debug  [q] quit"))
	b.WriteString("\n")

	return b.String()
}

// RunReplay starts an interactive replay on the alternate screen.
func RunReplay(m *ReplayModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
