// Package notation provides move-sequence algebra on top of the slice notation.
package notation

import (
	"github.com/SeamusWaldron/slicecube"
)

// Invert returns the sequence that undoes moves: reversed order, each move
// turned the other way.
func Invert(moves []slicecube.Move) []slicecube.Move {
	out := make([]slicecube.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Normalize returns the shortest move list turning slice s by net quarter
// turns, counting clockwise as positive.
// 0 -> none, 1 -> s, 2 -> s s, 3 -> s', -1 -> s'
func Normalize(s slicecube.Slice, net int) []slicecube.Move {
	net = ((net % 4) + 4) % 4
	switch net {
	case 1:
		return []slicecube.Move{slicecube.NewMove(slicecube.CW, s)}
	case 2:
		return []slicecube.Move{slicecube.NewMove(slicecube.CW, s), slicecube.NewMove(slicecube.CW, s)}
	case 3:
		return []slicecube.Move{slicecube.NewMove(slicecube.CCW, s)}
	default:
		return nil
	}
}

// run is a group of consecutive turns of one slice.
type run struct {
	slice slicecube.Slice
	net   int
	last  slicecube.Move
}

// Simplify folds consecutive turns of the same slice modulo four and drops
// runs that cancel out. Cancelling a run can expose a new pair of neighbours
// on the same slice, which is folded as well. The result reaches the same
// cube state as moves.
//
// Each surviving move keeps the timestamp of the last move of its run.
func Simplify(moves []slicecube.Move) []slicecube.Move {
	var stack []run
	for _, m := range moves {
		delta := 1
		if m.Direction == slicecube.CCW {
			delta = -1
		}

		if n := len(stack); n > 0 && stack[n-1].slice == m.Slice {
			top := &stack[n-1]
			top.net = (top.net + delta + 4) % 4
			top.last = m
			if top.net == 0 {
				stack = stack[:n-1]
			}
			continue
		}
		stack = append(stack, run{slice: m.Slice, net: (delta + 4) % 4, last: m})
	}

	out := make([]slicecube.Move, 0, len(stack))
	for _, r := range stack {
		for _, m := range Normalize(r.slice, r.net) {
			out = append(out, m.WithTime(r.last.Time))
		}
	}
	return out
}

// QuarterTurns returns the number of quarter turns in moves once simplified.
func QuarterTurns(moves []slicecube.Move) int {
	return len(Simplify(moves))
}
