package analysis

import (
	"github.com/SeamusWaldron/slicecube"
)

// Token encoding for efficient n-gram detection.
// Encodes a Move as a single byte: (slice-1) * 2 + direction.
// This gives 18 unique values, one per table.

// moveToken encodes a Move as a single byte for efficient hashing.
func moveToken(m slicecube.Move) uint8 {
	return uint8(int(m.Slice-slicecube.MinSlice)*slicecube.NumDirections + int(m.Direction))
}

// moveFromToken decodes a token back to a Move.
func moveFromToken(token uint8) slicecube.Move {
	slice := slicecube.Slice(int(token)/slicecube.NumDirections) + slicecube.MinSlice
	dir := slicecube.Direction(int(token) % slicecube.NumDirections)
	return slicecube.NewMove(dir, slice)
}
