package slicecube

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the turning direction of a slice.
type Direction int

const (
	CW  Direction = 0 // Clockwise (90 degrees)
	CCW Direction = 1 // Counter-clockwise (90 degrees)
)

// NumDirections is the number of valid directions.
const NumDirections = 2

// Valid reports whether d is CW or CCW.
func (d Direction) Valid() bool {
	return d == CW || d == CCW
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == CW {
		return CCW
	}
	return CW
}

func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Slice identifies one of the nine independently turnable layers.
//
//	1 2 3  column layers, left to right
//	4 5 6  layers parallel to the front face, back to front
//	7 8 9  horizontal layers, top to bottom
//
// Slices 2, 5 and 8 are middle layers and carry no face of their own.
type Slice int

const (
	MinSlice Slice = 1
	MaxSlice Slice = 9
)

// NumSlices is the number of addressable slices.
const NumSlices = int(MaxSlice - MinSlice + 1)

// Valid reports whether s is in [1,9].
func (s Slice) Valid() bool {
	return s >= MinSlice && s <= MaxSlice
}

// IsMiddle reports whether s is a middle layer.
func (s Slice) IsMiddle() bool {
	return s == 2 || s == 5 || s == 8
}

// Move represents a single quarter turn, with an optional timestamp.
type Move struct {
	Direction Direction // Which way to turn
	Slice     Slice     // Which layer to turn
	Time      time.Time // When the move occurred (optional)
}

// NewMove returns the move turning slice s in direction d.
func NewMove(d Direction, s Slice) Move {
	return Move{Direction: d, Slice: s}
}

// Valid reports whether both the direction and the slice are in range.
func (m Move) Valid() bool {
	return m.Direction.Valid() && m.Slice.Valid()
}

// Notation returns the slice number, followed by ' for counter-clockwise turns.
// Examples: 1, 1', 7, 9'
func (m Move) Notation() string {
	suffix := ""
	if m.Direction == CCW {
		suffix = "'"
	}
	return fmt.Sprintf("%d%s", int(m.Slice), suffix)
}

// Inverse returns the move that undoes this move.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = m.Direction.Opposite()
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// SameTurn reports whether both moves turn the same slice the same way,
// ignoring timestamps.
func (m Move) SameTurn(other Move) bool {
	return m.Direction == other.Direction && m.Slice == other.Slice
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// AllMoves returns the 18 valid moves, ordered by slice then direction.
func AllMoves() []Move {
	moves := make([]Move, 0, NumSlices*NumDirections)
	for s := MinSlice; s <= MaxSlice; s++ {
		moves = append(moves, NewMove(CW, s), NewMove(CCW, s))
	}
	return moves
}

// ParseMove parses a single move in slice notation.
// Examples: 1, 1', 9`
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract slice
	if s[0] < '1' || s[0] > '9' {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidNotation)
	}
	slice := Slice(s[0] - '0')

	// Extract direction
	direction := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			direction = CCW
		default:
			return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidNotation)
		}
	}

	return NewMove(direction, slice), nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "1 7' 5"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
