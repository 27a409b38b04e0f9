package slicecube

// Tracker holds the latest cube snapshot together with the moves that led
// to it. It is not safe for concurrent use.
type Tracker struct {
	start    Cube
	cube     Cube
	moves    []Move
	onSolved func(c Cube, moveCount int)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return NewTrackerFrom(New())
}

// NewTrackerFrom creates a tracker starting from c.
func NewTrackerFrom(c Cube) *Tracker {
	return &Tracker{start: c, cube: c}
}

// OnSolved sets a callback fired whenever a move leaves the cube solved.
func (t *Tracker) OnSolved(cb func(c Cube, moveCount int)) {
	t.onSolved = cb
}

// Reset returns the tracker to its starting cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = t.start
	t.moves = nil
}

// Apply applies moves in order. On an invalid move the moves before it
// stay applied and the error is returned.
func (t *Tracker) Apply(moves ...Move) error {
	for _, m := range moves {
		next, err := t.cube.Move(m)
		if err != nil {
			return err
		}
		t.cube = next
		t.moves = append(t.moves, m)
		t.checkSolved()
	}
	return nil
}

// Undo reverts the most recent move by applying its inverse.
func (t *Tracker) Undo() (Move, error) {
	if len(t.moves) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := t.moves[len(t.moves)-1]
	next, err := t.cube.Move(last.Inverse())
	if err != nil {
		return Move{}, err
	}
	t.cube = next
	t.moves = t.moves[:len(t.moves)-1]
	return last, nil
}

func (t *Tracker) checkSolved() {
	if t.onSolved != nil && t.cube.IsSolved() {
		t.onSolved(t.cube, len(t.moves))
	}
}

// Cube returns the current snapshot.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// Start returns the cube the tracker started from.
func (t *Tracker) Start() Cube {
	return t.start
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// MoveCount returns the number of moves applied since the start.
func (t *Tracker) MoveCount() int {
	return len(t.moves)
}

// IsSolved reports whether the current snapshot is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Progress returns the progress of the current snapshot.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}
