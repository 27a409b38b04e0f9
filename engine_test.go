package slicecube

import (
	"errors"
	"testing"
)

// cubies lists the stickers of every corner and edge piece. A move that
// splits the stickers of a piece would produce a cube that cannot exist.
var cubies = [][]Cell{
	{{FaceUp, 0}, {FaceLeft, 0}, {FaceBack, 2}},
	{{FaceUp, 2}, {FaceBack, 0}, {FaceRight, 2}},
	{{FaceUp, 6}, {FaceFront, 0}, {FaceLeft, 2}},
	{{FaceUp, 8}, {FaceFront, 2}, {FaceRight, 0}},
	{{FaceFront, 6}, {FaceLeft, 8}, {FaceDown, 0}},
	{{FaceFront, 8}, {FaceRight, 6}, {FaceDown, 2}},
	{{FaceLeft, 6}, {FaceBack, 8}, {FaceDown, 6}},
	{{FaceBack, 6}, {FaceRight, 8}, {FaceDown, 8}},
	{{FaceUp, 1}, {FaceBack, 1}},
	{{FaceUp, 3}, {FaceLeft, 1}},
	{{FaceUp, 5}, {FaceRight, 1}},
	{{FaceUp, 7}, {FaceFront, 1}},
	{{FaceFront, 3}, {FaceLeft, 5}},
	{{FaceFront, 5}, {FaceRight, 3}},
	{{FaceFront, 7}, {FaceDown, 1}},
	{{FaceLeft, 3}, {FaceBack, 5}},
	{{FaceLeft, 7}, {FaceDown, 3}},
	{{FaceBack, 3}, {FaceRight, 5}},
	{{FaceBack, 7}, {FaceDown, 7}},
	{{FaceRight, 7}, {FaceDown, 5}},
}

// scrambledCube returns a reproducible, thoroughly mixed cube.
func scrambledCube(t *testing.T) Cube {
	t.Helper()
	c := NewSeededScrambler(42).Scramble(New())
	if c.IsSolved() {
		t.Fatal("scrambled cube should not be solved")
	}
	return c
}

func mustApply(t *testing.T, c Cube, d Direction, s Slice) Cube {
	t.Helper()
	next, err := Apply(c, d, s)
	if err != nil {
		t.Fatalf("Apply(%v, %d): %v", d, s, err)
	}
	return next
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves() {
		c := mustApply(t, New(), m.Direction, m.Slice)
		if c.IsSolved() {
			t.Errorf("%v: cube should not be solved", m)
		}
	}
}

func TestSliceOneClockwiseFromSolved(t *testing.T) {
	c := mustApply(t, New(), CW, 1)

	want := map[Face][FaceletsPerFace]Color{
		FaceUp:    {Orange, White, White, Orange, White, White, Orange, White, White},
		FaceFront: {White, Red, Red, White, Red, Red, White, Red, Red},
		FaceLeft:  {Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue},
		FaceBack:  {Orange, Orange, Yellow, Orange, Orange, Yellow, Orange, Orange, Yellow},
		FaceRight: {Green, Green, Green, Green, Green, Green, Green, Green, Green},
		FaceDown:  {Red, Yellow, Yellow, Red, Yellow, Yellow, Red, Yellow, Yellow},
	}
	for face, colors := range want {
		if c.facelets[face] != colors {
			t.Errorf("face %v = %v, want %v", face, c.facelets[face], colors)
		}
	}
}

func TestSliceTwoFromSolved(t *testing.T) {
	cases := []struct {
		d    Direction
		want map[Face][FaceletsPerFace]Color
	}{
		{CW, map[Face][FaceletsPerFace]Color{
			FaceUp:    {White, Orange, White, White, Orange, White, White, Orange, White},
			FaceFront: {Red, White, Red, Red, White, Red, Red, White, Red},
			FaceLeft:  {Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue},
			FaceBack:  {Orange, Yellow, Orange, Orange, Yellow, Orange, Orange, Yellow, Orange},
			FaceRight: {Green, Green, Green, Green, Green, Green, Green, Green, Green},
			FaceDown:  {Yellow, Red, Yellow, Yellow, Red, Yellow, Yellow, Red, Yellow},
		}},
		{CCW, map[Face][FaceletsPerFace]Color{
			FaceUp:    {White, Red, White, White, Red, White, White, Red, White},
			FaceFront: {Red, Yellow, Red, Red, Yellow, Red, Red, Yellow, Red},
			FaceLeft:  {Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue},
			FaceBack:  {Orange, White, Orange, Orange, White, Orange, Orange, White, Orange},
			FaceRight: {Green, Green, Green, Green, Green, Green, Green, Green, Green},
			FaceDown:  {Yellow, Orange, Yellow, Yellow, Orange, Yellow, Yellow, Orange, Yellow},
		}},
	}
	for _, tc := range cases {
		c := mustApply(t, New(), tc.d, 2)
		for face, colors := range tc.want {
			if c.facelets[face] != colors {
				t.Errorf("%v: face %v = %v, want %v", tc.d, face, c.facelets[face], colors)
			}
		}
	}
}

// The back face is read upside down, so the sticker at the top of the
// middle column lands at the bottom of the back face.
func TestSliceTwoReversesBackColumn(t *testing.T) {
	var c Cube
	c.facelets[FaceUp][1] = Red
	c = mustApply(t, c, CW, 2)
	if got := c.At(Cell{FaceFront, 1}); got != Red {
		t.Errorf("after CW front[1] = %v, want %v", got, Red)
	}
	c = mustApply(t, mustApply(t, c, CW, 2), CW, 2)
	if got := c.At(Cell{FaceBack, 7}); got != Red {
		t.Errorf("after three CW back[7] = %v, want %v", got, Red)
	}
}

func TestFourTurnsReturnToStart(t *testing.T) {
	starts := map[string]Cube{"solved": New(), "scrambled": scrambledCube(t)}
	for name, start := range starts {
		for _, m := range AllMoves() {
			c := start
			for i := 0; i < 4; i++ {
				c = mustApply(t, c, m.Direction, m.Slice)
				if name == "solved" && i < 3 && c.Equal(start) {
					t.Errorf("%s: %v returned to start after %d turns", name, m, i+1)
				}
			}
			if !c.Equal(start) {
				t.Errorf("%s: %v x 4 should return to start", name, m)
				t.Log(c.String())
			}
		}
	}
}

func TestSliceOneFourTimesFromSolved(t *testing.T) {
	c := New()
	for i := 0; i < 4; i++ {
		c = mustApply(t, c, CW, 1)
	}
	if !c.Equal(New()) {
		t.Error("1 1 1 1 should reproduce the solved cube")
		t.Log(c.String())
	}
}

func TestInverseRestores(t *testing.T) {
	start := scrambledCube(t)
	for s := MinSlice; s <= MaxSlice; s++ {
		c := mustApply(t, mustApply(t, start, CW, s), CCW, s)
		if !c.Equal(start) {
			t.Errorf("slice %d: CW then CCW should restore the cube", s)
		}
		c = mustApply(t, mustApply(t, start, CCW, s), CW, s)
		if !c.Equal(start) {
			t.Errorf("slice %d: CCW then CW should restore the cube", s)
		}
	}
}

func TestCounterClockwiseIsThreeClockwise(t *testing.T) {
	start := scrambledCube(t)
	for s := MinSlice; s <= MaxSlice; s++ {
		ccw := mustApply(t, start, CCW, s)
		cw3 := start
		for i := 0; i < 3; i++ {
			cw3 = mustApply(t, cw3, CW, s)
		}
		if !ccw.Equal(cw3) {
			t.Errorf("slice %d: CCW should equal three CW turns", s)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	start := scrambledCube(t)
	snapshot := start.Facelets()
	for _, m := range AllMoves() {
		if _, err := Apply(start, m.Direction, m.Slice); err != nil {
			t.Fatal(err)
		}
	}
	if start.Facelets() != snapshot {
		t.Error("Apply modified its input")
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	start := scrambledCube(t)
	for _, m := range AllMoves() {
		a := mustApply(t, start, m.Direction, m.Slice)
		b := mustApply(t, start, m.Direction, m.Slice)
		if !a.Equal(b) {
			t.Errorf("%v: repeated application differs", m)
		}
	}
}

func TestLocality(t *testing.T) {
	start := scrambledCube(t)
	for _, m := range AllMoves() {
		support, err := Support(m)
		if err != nil {
			t.Fatal(err)
		}
		touched := make(map[Cell]bool, len(support))
		for _, cell := range support {
			touched[cell] = true
		}

		c := mustApply(t, start, m.Direction, m.Slice)
		for i := 0; i < NumFacelets; i++ {
			cell := cellAt(i)
			if touched[cell] {
				continue
			}
			if c.At(cell) != start.At(cell) {
				t.Errorf("%v changed untouched cell %v", m, cell)
			}
		}
	}
}

func TestSupportSizes(t *testing.T) {
	for _, m := range AllMoves() {
		support, err := Support(m)
		if err != nil {
			t.Fatal(err)
		}
		want := 20
		if m.Slice.IsMiddle() {
			want = 12
		}
		if len(support) != want {
			t.Errorf("%v touches %d cells, want %d", m, len(support), want)
		}
		for _, cell := range support {
			if cell.Position == Center && !m.Slice.IsMiddle() {
				t.Errorf("%v moves center %v", m, cell)
			}
		}
	}
}

func TestTablesAreFourCycles(t *testing.T) {
	for s := MinSlice; s <= MaxSlice; s++ {
		for d := CW; d <= CCW; d++ {
			p := permutations[s-1][d]
			seen := make(map[uint8]bool)
			for _, src := range p {
				if seen[src] {
					t.Fatalf("slice %d %v: source %d used twice", s, d, src)
				}
				seen[src] = true
			}
			for i := range p {
				length := 1
				for j := p[i]; int(j) != i; j = p[j] {
					length++
				}
				if length != 1 && length != 4 {
					t.Errorf("slice %d %v: cell %v is on a cycle of length %d", s, d, cellAt(i), length)
				}
			}
		}
	}
}

func TestMovesKeepPiecesTogether(t *testing.T) {
	pieceOf := make(map[Cell]int)
	for i, piece := range cubies {
		for _, cell := range piece {
			pieceOf[cell] = i
		}
	}

	for _, m := range AllMoves() {
		p := permutations[m.Slice-1][m.Direction]
		// dest[src] = where the sticker at src ends up
		var dest [NumFacelets]int
		for dst, src := range p {
			dest[src] = dst
		}
		for i, piece := range cubies {
			target := -1
			for _, cell := range piece {
				got, ok := pieceOf[cellAt(dest[cell.index()])]
				if !ok {
					t.Fatalf("%v moves a sticker of piece %d onto a center", m, i)
				}
				if target == -1 {
					target = got
				} else if got != target {
					t.Errorf("%v splits piece %v", m, piece)
					break
				}
			}
			if len(cubies[target]) != len(piece) {
				t.Errorf("%v moves piece %v onto a different kind of piece", m, piece)
			}
		}
	}
}

func TestCommutatorOrderSix(t *testing.T) {
	c := New()
	for i := 1; i <= 6; i++ {
		var err error
		c, err = ApplyMoves(c, Commutator...)
		if err != nil {
			t.Fatal(err)
		}
		if i < 6 && c.IsSolved() {
			t.Errorf("commutator returned to solved after %d repetitions", i)
		}
	}
	if !c.Equal(New()) {
		t.Error("commutator x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestWholeCubeTurnIsSolvedButRecolored(t *testing.T) {
	c, err := ApplyMoves(New(), WholeCubeTurn...)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("turning all horizontal layers should leave every face monochrome")
	}
	if c.Equal(New()) {
		t.Error("turning all horizontal layers should move the side colors")
	}
	if got := c.At(Cell{FaceFront, Center}); got != Green {
		t.Errorf("front center = %v, want %v", got, Green)
	}
}

func TestInvalidMoves(t *testing.T) {
	c := New()
	cases := []struct {
		d Direction
		s Slice
	}{
		{2, 5},
		{0, 0},
		{0, 10},
		{-1, 1},
		{1, -3},
	}
	for _, tc := range cases {
		if _, err := Apply(c, tc.d, tc.s); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Apply(%d, %d) error = %v, want ErrInvalidMove", tc.d, tc.s, err)
		}
	}

	if _, err := Support(Move{Direction: 3, Slice: 1}); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Support error = %v, want ErrInvalidMove", err)
	}
}

func TestApplyMovesStopsAtInvalid(t *testing.T) {
	_, err := ApplyMoves(New(), S1, Move{Direction: CW, Slice: 11}, S2)
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ApplyMoves error = %v, want ErrInvalidMove", err)
	}
}
