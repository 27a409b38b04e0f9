package slicecube

// ScrambleOption configures a Scrambler.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	source    IntSource
	moveCount int
}

// DefaultScrambleMoves is the number of random moves in a scramble.
const DefaultScrambleMoves = 100

func defaultScrambleConfig() *scrambleConfig {
	return &scrambleConfig{
		moveCount: DefaultScrambleMoves,
	}
}

// WithRand sets the source of randomness.
// Use a seeded source to make scrambles reproducible.
func WithRand(src IntSource) ScrambleOption {
	return func(c *scrambleConfig) {
		c.source = src
	}
}

// WithMoveCount sets how many random moves a scramble applies.
// Non-positive values are ignored.
func WithMoveCount(n int) ScrambleOption {
	return func(c *scrambleConfig) {
		if n > 0 {
			c.moveCount = n
		}
	}
}
