package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/display"
)

var (
	headerText  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successText = color.New(color.FgGreen).SprintFunc()
	warnText    = color.New(color.FgYellow).SprintFunc()
)

// printCube writes the net of c followed by its status line.
func printCube(w io.Writer, c slicecube.Cube, moveCount int) {
	fmt.Fprint(w, renderer().Net(c))
	fmt.Fprintln(w, display.StatusLine(c, moveCount))
}

// printHeading writes a title underlined to its width.
func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, headerText(title))
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

// wrapMoves groups move notation into lines of at most width characters.
func wrapMoves(moves []slicecube.Move, width int) []string {
	var lines []string
	var line string
	for _, m := range moves {
		n := m.Notation()
		switch {
		case line == "":
			line = n
		case len(line)+len(n)+1 > width:
			lines = append(lines, line)
			line = n
		default:
			line += " " + n
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

func yesNo(b bool) string {
	if b {
		return successText("yes")
	}
	return "no"
}
