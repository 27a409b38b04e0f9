package slicecube

import (
	"errors"
	"testing"
)

func TestTrackerApplyAndUndo(t *testing.T) {
	tr := NewTracker()
	if err := tr.Apply(S1, S7Prime, S5); err != nil {
		t.Fatal(err)
	}
	if tr.MoveCount() != 3 {
		t.Errorf("MoveCount() = %d, want 3", tr.MoveCount())
	}
	if tr.IsSolved() {
		t.Error("cube should be scrambled")
	}

	for i := 0; i < 3; i++ {
		if _, err := tr.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i+1, err)
		}
	}
	if !tr.Cube().Equal(New()) {
		t.Error("undoing every move should return to the start")
	}
	if _, err := tr.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty history error = %v, want ErrNothingToUndo", err)
	}
}

func TestTrackerUndoReturnsLastMove(t *testing.T) {
	tr := NewTracker()
	if err := tr.Apply(S3, S9Prime); err != nil {
		t.Fatal(err)
	}
	m, err := tr.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if !m.SameTurn(S9Prime) {
		t.Errorf("Undo() = %v, want 9'", m)
	}
	if got := FormatMoves(tr.Moves()); got != "3" {
		t.Errorf("Moves() = %q, want %q", got, "3")
	}
}

func TestTrackerStopsAtInvalidMove(t *testing.T) {
	tr := NewTracker()
	err := tr.Apply(S1, Move{Direction: CW, Slice: 0}, S2)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Apply error = %v, want ErrInvalidMove", err)
	}
	if tr.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, want 1", tr.MoveCount())
	}
}

func TestTrackerOnSolved(t *testing.T) {
	tr := NewTracker()
	var fired []int
	tr.OnSolved(func(c Cube, moveCount int) {
		if !c.IsSolved() {
			t.Error("callback received an unsolved cube")
		}
		fired = append(fired, moveCount)
	})

	if err := tr.Apply(S6, S6, S6, S6); err != nil {
		t.Fatal(err)
	}
	if len(fired) != 1 || fired[0] != 4 {
		t.Errorf("OnSolved fired with %v, want [4]", fired)
	}
}

func TestTrackerFromScramble(t *testing.T) {
	start := scrambledCube(t)
	tr := NewTrackerFrom(start)
	if err := tr.Apply(S2, S4); err != nil {
		t.Fatal(err)
	}
	tr.Reset()
	if !tr.Cube().Equal(start) || tr.MoveCount() != 0 {
		t.Error("Reset should restore the starting cube and clear history")
	}
	if !tr.Start().Equal(start) {
		t.Error("Start() should return the initial cube")
	}
}

func TestTrackerMovesIsCopy(t *testing.T) {
	tr := NewTracker()
	if err := tr.Apply(S1); err != nil {
		t.Fatal(err)
	}
	moves := tr.Moves()
	moves[0] = S9
	if !tr.Moves()[0].SameTurn(S1) {
		t.Error("Moves() should return a copy")
	}
}
