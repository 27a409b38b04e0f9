package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/slicecube"
)

// layerNames describes each slice as seen facing the front face.
var layerNames = [slicecube.MaxSlice + 1]string{
	1: "left column",
	2: "middle column",
	3: "right column",
	4: "back layer",
	5: "standing layer",
	6: "front layer",
	7: "top row",
	8: "equator",
	9: "bottom row",
}

// LayerName returns the plain-language name of a slice.
func LayerName(s slicecube.Slice) string {
	if !s.Valid() {
		return fmt.Sprintf("slice %d", int(s))
	}
	return layerNames[s]
}

// Describe converts a move to a phrase naming the layer and where its
// front or top stickers travel, facing the front face.
//
// Mapping:
//
//	1..3   -> "<column> down"          1'..3'  -> "<column> up"
//	4..6   -> "<layer> rotate left"    4'..6'  -> "<layer> rotate right"
//	7..9   -> "<row> left"             7'..9'  -> "<row> right"
func Describe(m slicecube.Move) string {
	if !m.Valid() {
		return m.Notation()
	}

	cw := m.Direction == slicecube.CW
	var way string
	switch {
	case m.Slice <= 3:
		way = pick(cw, "down", "up")
	case m.Slice <= 6:
		way = pick(cw, "rotate left", "rotate right")
	default:
		way = pick(cw, "left", "right")
	}
	return LayerName(m.Slice) + " " + way
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// DescribeSequence describes each move, separated by commas.
func DescribeSequence(moves []slicecube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
