package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/SeamusWaldron/slicecube"
)

// shiftedDigits maps the shifted digit keys of a US layout to slices.
var shiftedDigits = map[string]slicecube.Slice{
	"!": 1, "@": 2, "#": 3, "$": 4, "%": 5, "^": 6, "&": 7, "*": 8, "(": 9,
}

type keyMap struct {
	Clockwise        key.Binding
	CounterClockwise key.Binding
	Undo             key.Binding
	Scramble         key.Binding
	Reset            key.Binding
	Debug            key.Binding
	Quit             key.Binding
}

var keys = keyMap{
	Clockwise: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "turn"),
	),
	CounterClockwise: key.NewBinding(
		key.WithKeys("!", "@", "#", "$", "%", "^", "&", "*", "("),
		key.WithHelp("shift+1-9", "turn back"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "backspace"),
		key.WithHelp("u", "undo"),
	),
	Scramble: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scramble"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Debug: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "debug"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clockwise, k.CounterClockwise, k.Undo, k.Scramble, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clockwise, k.CounterClockwise},
		{k.Undo, k.Scramble, k.Reset},
		{k.Debug, k.Quit},
	}
}

// moveForKey returns the move bound to a key, if any.
func moveForKey(s string) (slicecube.Move, bool) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return slicecube.NewMove(slicecube.CW, slicecube.Slice(s[0]-'0')), true
	}
	if sl, ok := shiftedDigits[s]; ok {
		return slicecube.NewMove(slicecube.CCW, sl), true
	}
	return slicecube.Move{}, false
}
