package slicecube

import "fmt"

// permutation is a gather table over the 54 facelet indices: after the move,
// facelet i holds the color that was at permutation[i].
type permutation [NumFacelets]uint8

// identity returns the permutation that leaves every facelet in place.
func identity() permutation {
	var p permutation
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// inverse returns the permutation that undoes p.
func (p permutation) inverse() permutation {
	var inv permutation
	for dst, src := range p {
		inv[src] = uint8(dst)
	}
	return inv
}

// permutations is indexed by [slice-1][direction].
var permutations [NumSlices][NumDirections]permutation

func init() {
	for s := MinSlice; s <= MaxSlice; s++ {
		cw := identity()
		for _, c := range clockwiseCycles[s] {
			for i := range c {
				next := c[(i+1)%len(c)]
				cw[next.index()] = uint8(c[i].index())
			}
		}
		permutations[s-1][CW] = cw
		permutations[s-1][CCW] = cw.inverse()
	}
}

// apply gathers facelets through p into a new cube.
func (c Cube) apply(p *permutation) Cube {
	var out Cube
	for i, src := range p {
		out.facelets[i/FaceletsPerFace][i%FaceletsPerFace] = c.facelets[src/FaceletsPerFace][src%FaceletsPerFace]
	}
	return out
}

// Apply returns the cube obtained by turning slice s of c in direction d.
// c itself is never modified.
func Apply(c Cube, d Direction, s Slice) (Cube, error) {
	if !d.Valid() {
		return Cube{}, fmt.Errorf("direction %d: %w", int(d), ErrInvalidMove)
	}
	if !s.Valid() {
		return Cube{}, fmt.Errorf("slice %d: %w", int(s), ErrInvalidMove)
	}
	return c.apply(&permutations[s-1][d]), nil
}

// Move returns the cube obtained by applying m.
func (c Cube) Move(m Move) (Cube, error) {
	return Apply(c, m.Direction, m.Slice)
}

// ApplyMoves applies a sequence of moves in order.
// It stops at the first invalid move and returns its error.
func ApplyMoves(c Cube, moves ...Move) (Cube, error) {
	for i, m := range moves {
		next, err := c.Move(m)
		if err != nil {
			return Cube{}, fmt.Errorf("move %d: %w", i+1, err)
		}
		c = next
	}
	return c, nil
}

// Support returns the cells a move relocates, in facelet order.
// Every other cell is left untouched by the move.
func Support(m Move) ([]Cell, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%v/%v: %w", m.Direction, int(m.Slice), ErrInvalidMove)
	}
	p := &permutations[m.Slice-1][m.Direction]
	var cells []Cell
	for i, src := range p {
		if int(src) != i {
			cells = append(cells, cellAt(i))
		}
	}
	return cells, nil
}
