package slicecube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	c, err := slicecube.ApplyMoves(slicecube.New(), slicecube.S1, slicecube.S7, slicecube.S1Prime)
var (
	// Column layers, left to right
	S1      = Move{Direction: CW, Slice: 1}
	S1Prime = Move{Direction: CCW, Slice: 1}
	S2      = Move{Direction: CW, Slice: 2}
	S2Prime = Move{Direction: CCW, Slice: 2}
	S3      = Move{Direction: CW, Slice: 3}
	S3Prime = Move{Direction: CCW, Slice: 3}

	// Layers parallel to the front face, back to front
	S4      = Move{Direction: CW, Slice: 4}
	S4Prime = Move{Direction: CCW, Slice: 4}
	S5      = Move{Direction: CW, Slice: 5}
	S5Prime = Move{Direction: CCW, Slice: 5}
	S6      = Move{Direction: CW, Slice: 6}
	S6Prime = Move{Direction: CCW, Slice: 6}

	// Horizontal layers, top to bottom
	S7      = Move{Direction: CW, Slice: 7}
	S7Prime = Move{Direction: CCW, Slice: 7}
	S8      = Move{Direction: CW, Slice: 8}
	S8Prime = Move{Direction: CCW, Slice: 8}
	S9      = Move{Direction: CW, Slice: 9}
	S9Prime = Move{Direction: CCW, Slice: 9}
)

// Commutator of the left and top layers: 1 7 1' 7'.
// Repeating it six times returns any cube to where it started.
var Commutator = []Move{S1, S7, S1Prime, S7Prime}

// WholeCubeTurn turns all three horizontal layers the same way, which
// rotates the entire cube about the vertical axis.
var WholeCubeTurn = []Move{S7, S8, S9}
