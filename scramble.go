package slicecube

import (
	"math/rand/v2"
	"time"
)

// IntSource supplies random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type IntSource interface {
	IntN(n int) int
}

// Scrambler applies a random walk of moves to a cube.
// A Scrambler is not safe for concurrent use unless its source is.
type Scrambler struct {
	source    IntSource
	moveCount int
}

// NewScrambler creates a scrambler. Without WithRand it draws from a
// PCG generator seeded from the clock.
func NewScrambler(opts ...ScrambleOption) *Scrambler {
	cfg := defaultScrambleConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.source == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.source = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Scrambler{source: cfg.source, moveCount: cfg.moveCount}
}

// NewSeededScrambler creates a scrambler whose moves are fully determined by seed.
func NewSeededScrambler(seed uint64, opts ...ScrambleOption) *Scrambler {
	opts = append([]ScrambleOption{WithRand(rand.New(rand.NewPCG(seed, seed)))}, opts...)
	return NewScrambler(opts...)
}

// MoveCount returns the number of moves applied per scramble.
func (s *Scrambler) MoveCount() int {
	return s.moveCount
}

// Scramble returns c after the configured number of random moves.
func (s *Scrambler) Scramble(c Cube) Cube {
	out, _ := s.ScrambleSequence(c)
	return out
}

// ScrambleSequence is like Scramble but also returns the moves applied.
func (s *Scrambler) ScrambleSequence(c Cube) (Cube, []Move) {
	moves := make([]Move, 0, s.moveCount)
	for i := 0; i < s.moveCount; i++ {
		m := s.nextMove()
		// nextMove only yields valid moves, so the table lookup cannot fail.
		c = c.apply(&permutations[m.Slice-1][m.Direction])
		moves = append(moves, m)
	}
	return c, moves
}

// nextMove draws a direction and a slice independently. Draws outside the
// valid domain are discarded and redrawn.
func (s *Scrambler) nextMove() Move {
	var d Direction
	for {
		d = Direction(s.source.IntN(NumDirections))
		if d.Valid() {
			break
		}
	}
	var sl Slice
	for {
		sl = Slice(s.source.IntN(NumSlices) + int(MinSlice))
		if sl.Valid() {
			break
		}
	}
	return NewMove(d, sl)
}
