package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	SolvedAt     *time.Time
	DurationMs   *int64
	ScrambleText *string
	Notes        *string
}

// Ended reports whether the session has been closed.
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

// Scramble returns the scramble notation, or "" when the session started solved.
func (s *Session) Scramble() string {
	if s.ScrambleText == nil {
		return ""
	}
	return *s.ScrambleText
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db  *DB
	now func() time.Time
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble, notes string) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, notes)
		VALUES (?, ?, ?, ?)
	`, id, formatTime(r.now()), nullable(scramble), nullable(notes))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete and records its duration.
func (r *SessionRepository) End(sessionID string) error {
	s, err := r.Get(sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %s: %w", sessionID, sql.ErrNoRows)
	}

	endedAt := r.now()
	durationMs := endedAt.Sub(s.StartedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?
		WHERE session_id = ?
	`, formatTime(endedAt), durationMs, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// MarkSolved records the first time the session reached a solved cube.
// Later calls keep the original time.
func (r *SessionRepository) MarkSolved(sessionID string, at time.Time) error {
	_, err := r.db.Exec(`
		UPDATE sessions
		SET solved_at = COALESCE(solved_at, ?)
		WHERE session_id = ?
	`, formatTime(at), sessionID)
	if err != nil {
		return fmt.Errorf("failed to mark session solved: %w", err)
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, solved_at, duration_ms, scramble_text, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt, solvedAt sql.NullString

	err := row.Scan(&s.SessionID, &startedAt, &endedAt, &solvedAt, &s.DurationMs, &s.ScrambleText, &s.Notes)
	if err != nil {
		return nil, err
	}

	s.StartedAt = parseTime(startedAt)
	s.EndedAt = parseNullTime(endedAt)
	s.SolvedAt = parseNullTime(solvedAt)
	return &s, nil
}

// Get retrieves a session by ID. It returns nil without error when no
// session has that ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently started session, or nil if there is none.
func (r *SessionRepository) GetLast() (*Session, error) {
	sessions, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
