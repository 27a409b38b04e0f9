package recorder

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records moves against a live cube. Every applied move is
// persisted before the in-memory snapshot advances, so a session can be
// resumed from the database after the process exits.
//
// Session is safe for concurrent use. Callbacks run on the calling
// goroutine after the session lock is released.
type Session struct {
	stateFile *StateFile
	now       func() time.Time

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	tracker   *slicecube.Tracker
	solved    bool

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	onMove   func(slicecube.Move, slicecube.Cube)
	onSolved func(slicecube.Cube, int)
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile) *Session {
	return &Session{
		stateFile:   stateFile,
		now:         time.Now,
		state:       StateIdle,
		tracker:     slicecube.NewTracker(),
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets the callback for each recorded move.
func (s *Session) SetMoveCallback(cb func(m slicecube.Move, c slicecube.Cube)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// SetSolvedCallback sets the callback fired the first time a move leaves
// the cube solved.
func (s *Session) SetSolvedCallback(cb func(c slicecube.Cube, moveCount int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSolved = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Cube returns the latest snapshot.
func (s *Session) Cube() slicecube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Cube()
}

// StartCube returns the cube the session started from.
func (s *Session) StartCube() slicecube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Start()
}

// Moves returns the moves recorded since the start.
func (s *Session) Moves() []slicecube.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Moves()
}

// MoveCount returns the current move count.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.MoveCount()
}

// ElapsedMs returns the elapsed time since the session started.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return s.now().Sub(s.startTime).Milliseconds()
}

// Start starts a new session from the cube obtained by applying scramble to
// a solved cube.
func (s *Session) Start(scramble []slicecube.Move, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrSessionActive
	}

	start, err := slicecube.ApplyMoves(slicecube.New(), scramble...)
	if err != nil {
		return "", fmt.Errorf("invalid scramble: %w", err)
	}

	sessionID, err := s.sessionRepo.Create(slicecube.FormatMoves(scramble), notes)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = s.now()
	s.tracker = slicecube.NewTrackerFrom(start)
	s.solved = false
	s.state = StateRecording

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(sessionID); err != nil {
			log.Printf("recorder: failed to save active session: %v", err)
		}
	}

	return sessionID, nil
}

// Resume reloads an open session: the scramble and every stored move are
// replayed from the solved cube to rebuild the snapshot.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return fmt.Errorf("%s: %w", sessionID, ErrSessionNotFound)
	}
	if sess.Ended() {
		return fmt.Errorf("%s: %w", sessionID, ErrSessionEnded)
	}

	tracker, err := replay(sess, s.moveRepo)
	if err != nil {
		return err
	}

	s.sessionID = sessionID
	s.startTime = sess.StartedAt
	s.tracker = tracker
	s.solved = sess.SolvedAt != nil
	s.state = StateRecording

	return nil
}

// Replay rebuilds the tracker of any stored session, ended or not.
func Replay(db *storage.DB, sessionID string) (*storage.Session, *slicecube.Tracker, error) {
	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return nil, nil, fmt.Errorf("%s: %w", sessionID, ErrSessionNotFound)
	}

	tracker, err := replay(sess, storage.NewMoveRepository(db))
	if err != nil {
		return nil, nil, err
	}
	return sess, tracker, nil
}

func replay(sess *storage.Session, moveRepo *storage.MoveRepository) (*slicecube.Tracker, error) {
	scramble, err := slicecube.ParseMoves(sess.Scramble())
	if err != nil {
		return nil, fmt.Errorf("session %s: bad scramble: %w", sess.SessionID, err)
	}
	start, err := slicecube.ApplyMoves(slicecube.New(), scramble...)
	if err != nil {
		return nil, fmt.Errorf("session %s: bad scramble: %w", sess.SessionID, err)
	}

	records, err := moveRepo.GetBySession(sess.SessionID)
	if err != nil {
		return nil, err
	}

	tracker := slicecube.NewTrackerFrom(start)
	if err := tracker.Apply(storage.ToMoves(records)...); err != nil {
		return nil, fmt.Errorf("session %s: %w", sess.SessionID, err)
	}
	return tracker, nil
}

// Apply records moves in order. A move without a timestamp is stamped with
// the current time. On error the moves before the failing one stay recorded.
func (s *Session) Apply(moves ...slicecube.Move) error {
	s.mu.Lock()

	if s.state != StateRecording {
		s.mu.Unlock()
		return ErrNoSession
	}

	var notify []func()
	var applyErr error
	for _, m := range moves {
		if !m.Valid() {
			applyErr = fmt.Errorf("%v: %w", m, slicecube.ErrInvalidMove)
			break
		}
		if m.Time.IsZero() {
			m = m.WithTime(s.now())
		}

		if _, err := s.moveRepo.Create(s.sessionID, s.tracker.MoveCount(), m); err != nil {
			applyErr = fmt.Errorf("failed to store move: %w", err)
			break
		}
		if err := s.tracker.Apply(m); err != nil {
			applyErr = err
			break
		}

		c := s.tracker.Cube()
		if cb := s.onMove; cb != nil {
			notify = append(notify, func() { cb(m, c) })
		}
		if c.IsSolved() && !s.solved {
			s.solved = true
			if err := s.sessionRepo.MarkSolved(s.sessionID, m.Time); err != nil {
				log.Printf("recorder: failed to mark session solved: %v", err)
			}
			if cb := s.onSolved; cb != nil {
				n := s.tracker.MoveCount()
				notify = append(notify, func() { cb(c, n) })
			}
		}
	}

	s.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
	return applyErr
}

// Undo removes the most recent move from the log and reverts the cube.
func (s *Session) Undo() (slicecube.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return slicecube.Move{}, ErrNoSession
	}
	if s.tracker.MoveCount() == 0 {
		return slicecube.Move{}, slicecube.ErrNothingToUndo
	}

	if _, err := s.moveRepo.DeleteLast(s.sessionID); err != nil {
		return slicecube.Move{}, fmt.Errorf("failed to delete move: %w", err)
	}
	return s.tracker.Undo()
}

// End ends the current session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSession
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			log.Printf("recorder: failed to clear active session: %v", err)
		}
	}

	return nil
}
