// Package display renders cubes and status text for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/slicecube"
)

// Styles shared by the CLI and the TUI.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	MoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	SolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps facelet colors to terminal colors.
var stickerColors = [slicecube.NumColors]lipgloss.Color{
	slicecube.White:  lipgloss.Color("15"),
	slicecube.Red:    lipgloss.Color("196"),
	slicecube.Blue:   lipgloss.Color("21"),
	slicecube.Orange: lipgloss.Color("208"),
	slicecube.Green:  lipgloss.Color("46"),
	slicecube.Yellow: lipgloss.Color("226"),
}

// Renderer draws cube nets. The zero value draws in color.
type Renderer struct {
	NoColor bool
}

func (r Renderer) sticker(c slicecube.Color) string {
	text := " " + c.String() + " "
	if r.NoColor || !c.Valid() {
		return text
	}
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("0")).
		Render(text)
}

// faceBlock renders one face as three lines.
func (r Renderer) faceBlock(c slicecube.Cube, face slicecube.Face) string {
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			sb.WriteString(r.sticker(c.At(slicecube.Cell{Face: face, Position: row*3 + col})))
		}
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// Net renders the cube unfolded: up on top, then left, front, right and
// back side by side, then down.
func (r Renderer) Net(c slicecube.Cube) string {
	indent := strings.Repeat(" ", 9)

	var sb strings.Builder
	for _, line := range strings.Split(r.faceBlock(c, slicecube.FaceUp), "\n") {
		sb.WriteString(indent + line + "\n")
	}

	band := lipgloss.JoinHorizontal(lipgloss.Top,
		r.faceBlock(c, slicecube.FaceLeft),
		r.faceBlock(c, slicecube.FaceFront),
		r.faceBlock(c, slicecube.FaceRight),
		r.faceBlock(c, slicecube.FaceBack),
	)
	sb.WriteString(band + "\n")

	for _, line := range strings.Split(r.faceBlock(c, slicecube.FaceDown), "\n") {
		sb.WriteString(indent + line + "\n")
	}
	return sb.String()
}

// ProgressBar renders the share of facelets matching their centers.
func ProgressBar(p slicecube.Progress, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(p.Percent() / 100 * float64(width))
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		p.Percent())
}

// StatusLine summarizes a cube in one line.
func StatusLine(c slicecube.Cube, moveCount int) string {
	p := c.Progress()
	if p.Solved {
		return SolvedStyle.Render(fmt.Sprintf("Solved in %d moves", moveCount))
	}
	return StatusStyle.Render(fmt.Sprintf("Moves: %d  Faces: %d/6  %s",
		moveCount, p.SolvedFaces, ProgressBar(p, 20)))
}
