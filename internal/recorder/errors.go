package recorder

import "errors"

var (
	// ErrSessionActive is returned when starting a session while one is recording.
	ErrSessionActive = errors.New("recorder: session already in progress")

	// ErrNoSession is returned when an operation needs a recording session.
	ErrNoSession = errors.New("recorder: no session in progress")

	// ErrSessionNotFound is returned when resuming an unknown session.
	ErrSessionNotFound = errors.New("recorder: session not found")

	// ErrSessionEnded is returned when resuming a session that was closed.
	ErrSessionEnded = errors.New("recorder: session already ended")
)
