package slicecube

import "errors"

// Sentinel errors for the slicecube package.
var (
	// Move errors
	ErrInvalidMove     = errors.New("slicecube: invalid move")
	ErrInvalidNotation = errors.New("slicecube: invalid move notation")

	// State errors
	ErrIndexOutOfRange = errors.New("slicecube: facelet index out of range")
	ErrNothingToUndo   = errors.New("slicecube: no move to undo")
)
