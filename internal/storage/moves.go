package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/slicecube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Direction int
	Slice     int
	Notation  string
}

// Move converts the record back to a slicecube.Move.
func (r MoveRecord) Move() slicecube.Move {
	return slicecube.Move{
		Direction: slicecube.Direction(r.Direction),
		Slice:     slicecube.Slice(r.Slice),
		Time:      time.UnixMilli(r.TsMs),
	}
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertMove(e execer, sessionID string, moveIndex int, m slicecube.Move) (sql.Result, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("move %d: %w", moveIndex, slicecube.ErrInvalidMove)
	}
	return e.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, direction, slice, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, m.Time.UnixMilli(), int(m.Direction), int(m.Slice), m.Notation())
}

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, m slicecube.Move) (int64, error) {
	result, err := insertMove(r.db, sessionID, moveIndex, m)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction, numbered from
// startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, moves []slicecube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			if _, err := insertMove(tx, sessionID, startIndex+i, m); err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, direction, slice, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Direction, &m.Slice, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// DeleteLast removes and returns the highest-indexed move of a session.
// It returns nil without error when the session has no moves.
func (r *MoveRepository) DeleteLast(sessionID string) (*MoveRecord, error) {
	var rec *MoveRecord
	err := r.db.Transaction(func(tx *sql.Tx) error {
		var m MoveRecord
		err := tx.QueryRow(`
			SELECT move_id, session_id, move_index, ts_ms, direction, slice, notation
			FROM moves
			WHERE session_id = ?
			ORDER BY move_index DESC
			LIMIT 1
		`, sessionID).Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Direction, &m.Slice, &m.Notation)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find last move: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM moves WHERE move_id = ?", m.MoveID); err != nil {
			return fmt.Errorf("failed to delete move: %w", err)
		}
		rec = &m
		return nil
	})
	return rec, err
}

// ToMoves converts MoveRecords to a slicecube.Move slice.
func ToMoves(records []MoveRecord) []slicecube.Move {
	moves := make([]slicecube.Move, len(records))
	for i, r := range records {
		moves[i] = r.Move()
	}
	return moves
}
