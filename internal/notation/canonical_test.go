package notation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/slicecube"
)

func parse(t *testing.T, s string) []slicecube.Move {
	t.Helper()
	moves, err := slicecube.ParseMoves(s)
	require.NoError(t, err)
	return moves
}

func TestInvert(t *testing.T) {
	seq := parse(t, "1 7' 5")
	assert.Equal(t, "5' 7 1'", slicecube.FormatMoves(Invert(seq)))

	c, err := slicecube.ApplyMoves(slicecube.New(), seq...)
	require.NoError(t, err)
	c, err = slicecube.ApplyMoves(c, Invert(seq)...)
	require.NoError(t, err)
	assert.True(t, c.Equal(slicecube.New()))

	assert.Empty(t, Invert(nil))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		net  int
		want string
	}{
		{0, ""},
		{1, "4"},
		{2, "4 4"},
		{3, "4'"},
		{4, ""},
		{-1, "4'"},
		{-2, "4 4"},
		{-3, "4"},
		{9, "4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slicecube.FormatMoves(Normalize(4, tt.net)), "net %d", tt.net)
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"1 1'", ""},
		{"1 1 1", "1'"},
		{"1 1 1 1", ""},
		{"7' 7'", "7 7"},
		{"1 2 2' 1", "1 1"},
		{"1 2 2' 1'", ""},
		{"3 5 5 5 5 3'", ""},
		{"1 7 1' 7'", "1 7 1' 7'"},
		{"9 8 8' 9 9 6", "9' 6"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Simplify(parse(t, tt.input))
			assert.Equal(t, tt.want, slicecube.FormatMoves(got))
		})
	}
}

func TestSimplifyReachesSameState(t *testing.T) {
	s := slicecube.NewSeededScrambler(11, slicecube.WithMoveCount(200))
	start, moves := s.ScrambleSequence(slicecube.New())

	simplified := Simplify(moves)
	assert.LessOrEqual(t, len(simplified), len(moves))

	got, err := slicecube.ApplyMoves(slicecube.New(), simplified...)
	require.NoError(t, err)
	assert.True(t, got.Equal(start), "simplified sequence should reach the scrambled state")
	assert.Equal(t, len(simplified), QuarterTurns(moves))
}

func TestSimplifyKeepsLastTimestamp(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	moves := []slicecube.Move{
		slicecube.S2.WithTime(t0),
		slicecube.S2.WithTime(t0.Add(time.Second)),
		slicecube.S2.WithTime(t0.Add(2 * time.Second)),
	}
	got := Simplify(moves)
	require.Len(t, got, 1)
	assert.Equal(t, slicecube.CCW, got[0].Direction)
	assert.True(t, got[0].Time.Equal(t0.Add(2*time.Second)))
}
