package slicecube

// cycle is a 4-cycle of facelets under a clockwise turn: the color at
// cycle[0] moves to cycle[1], cycle[1] to cycle[2], cycle[2] to cycle[3]
// and cycle[3] back to cycle[0].
type cycle [4]Cell

// clockwiseCycles holds the clockwise turn of every slice as disjoint
// 4-cycles. Outer slices list their three ring cycles followed by the
// corner and edge cycles of the face they carry; middle slices only have
// ring cycles. Counter-clockwise turns are derived by inversion.
var clockwiseCycles = [MaxSlice + 1][]cycle{
	1: {
		{{FaceUp, 0}, {FaceFront, 0}, {FaceDown, 0}, {FaceBack, 8}},
		{{FaceUp, 3}, {FaceFront, 3}, {FaceDown, 3}, {FaceBack, 5}},
		{{FaceUp, 6}, {FaceFront, 6}, {FaceDown, 6}, {FaceBack, 2}},
		{{FaceLeft, 0}, {FaceLeft, 2}, {FaceLeft, 8}, {FaceLeft, 6}},
		{{FaceLeft, 1}, {FaceLeft, 5}, {FaceLeft, 7}, {FaceLeft, 3}},
	},
	2: {
		{{FaceUp, 1}, {FaceFront, 1}, {FaceDown, 1}, {FaceBack, 7}},
		{{FaceUp, 4}, {FaceFront, 4}, {FaceDown, 4}, {FaceBack, 4}},
		{{FaceUp, 7}, {FaceFront, 7}, {FaceDown, 7}, {FaceBack, 1}},
	},
	3: {
		{{FaceUp, 2}, {FaceFront, 2}, {FaceDown, 2}, {FaceBack, 6}},
		{{FaceUp, 5}, {FaceFront, 5}, {FaceDown, 5}, {FaceBack, 3}},
		{{FaceUp, 8}, {FaceFront, 8}, {FaceDown, 8}, {FaceBack, 0}},
		{{FaceRight, 0}, {FaceRight, 6}, {FaceRight, 8}, {FaceRight, 2}},
		{{FaceRight, 1}, {FaceRight, 3}, {FaceRight, 7}, {FaceRight, 5}},
	},
	4: {
		{{FaceUp, 0}, {FaceLeft, 6}, {FaceDown, 8}, {FaceRight, 2}},
		{{FaceUp, 1}, {FaceLeft, 3}, {FaceDown, 7}, {FaceRight, 5}},
		{{FaceUp, 2}, {FaceLeft, 0}, {FaceDown, 6}, {FaceRight, 8}},
		{{FaceBack, 0}, {FaceBack, 2}, {FaceBack, 8}, {FaceBack, 6}},
		{{FaceBack, 1}, {FaceBack, 5}, {FaceBack, 7}, {FaceBack, 3}},
	},
	5: {
		{{FaceUp, 3}, {FaceLeft, 7}, {FaceDown, 5}, {FaceRight, 1}},
		{{FaceUp, 4}, {FaceLeft, 4}, {FaceDown, 4}, {FaceRight, 4}},
		{{FaceUp, 5}, {FaceLeft, 1}, {FaceDown, 3}, {FaceRight, 7}},
	},
	6: {
		{{FaceUp, 6}, {FaceLeft, 8}, {FaceDown, 2}, {FaceRight, 0}},
		{{FaceUp, 7}, {FaceLeft, 5}, {FaceDown, 1}, {FaceRight, 3}},
		{{FaceUp, 8}, {FaceLeft, 2}, {FaceDown, 0}, {FaceRight, 6}},
		{{FaceFront, 0}, {FaceFront, 6}, {FaceFront, 8}, {FaceFront, 2}},
		{{FaceFront, 1}, {FaceFront, 3}, {FaceFront, 7}, {FaceFront, 5}},
	},
	7: {
		{{FaceFront, 0}, {FaceLeft, 0}, {FaceBack, 0}, {FaceRight, 0}},
		{{FaceFront, 1}, {FaceLeft, 1}, {FaceBack, 1}, {FaceRight, 1}},
		{{FaceFront, 2}, {FaceLeft, 2}, {FaceBack, 2}, {FaceRight, 2}},
		{{FaceUp, 0}, {FaceUp, 2}, {FaceUp, 8}, {FaceUp, 6}},
		{{FaceUp, 1}, {FaceUp, 5}, {FaceUp, 7}, {FaceUp, 3}},
	},
	8: {
		{{FaceFront, 3}, {FaceLeft, 3}, {FaceBack, 3}, {FaceRight, 3}},
		{{FaceFront, 4}, {FaceLeft, 4}, {FaceBack, 4}, {FaceRight, 4}},
		{{FaceFront, 5}, {FaceLeft, 5}, {FaceBack, 5}, {FaceRight, 5}},
	},
	9: {
		{{FaceFront, 6}, {FaceLeft, 6}, {FaceBack, 6}, {FaceRight, 6}},
		{{FaceFront, 7}, {FaceLeft, 7}, {FaceBack, 7}, {FaceRight, 7}},
		{{FaceFront, 8}, {FaceLeft, 8}, {FaceBack, 8}, {FaceRight, 8}},
		{{FaceDown, 0}, {FaceDown, 6}, {FaceDown, 8}, {FaceDown, 2}},
		{{FaceDown, 1}, {FaceDown, 3}, {FaceDown, 7}, {FaceDown, 5}},
	},
}
