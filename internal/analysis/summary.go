package analysis

import (
	"time"

	"github.com/SeamusWaldron/slicecube"
)

// DefaultPauseThresholdMs is the gap between moves counted as a pause.
const DefaultPauseThresholdMs = 1500

// SessionSummary contains statistics for a single session.
type SessionSummary struct {
	SessionID         string            `json:"session_id"`
	StartedAt         time.Time         `json:"started_at"`
	EndedAt           *time.Time        `json:"ended_at,omitempty"`
	DurationMs        int64             `json:"duration_ms"`
	TotalMoves        int               `json:"total_moves"`
	OptimizedMoves    int               `json:"optimized_moves"`
	Efficiency        float64           `json:"efficiency"`
	TPSOverall        float64           `json:"tps_overall"`
	LongestPauseMs    int64             `json:"longest_pause_ms"`
	PauseCount        int               `json:"pause_count"`
	AvgMoveDurationMs float64           `json:"avg_move_duration_ms"`
	Solved            bool              `json:"solved"`
	Progress          float64           `json:"progress_percent"`
	Profile           *MovementProfile  `json:"profile"`
	Repetitions       *RepetitionReport `json:"repetitions"`
}

// SessionInput is what Summarize needs to know about a session.
type SessionInput struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Start     slicecube.Cube
	Moves     []slicecube.Move
}

// Summarize builds a SessionSummary. The final cube is obtained by replaying
// the moves on in.Start. Duration runs from StartedAt to EndedAt, or to the
// last move for a session still open.
func Summarize(in SessionInput) (*SessionSummary, error) {
	final, err := slicecube.ApplyMoves(in.Start, in.Moves...)
	if err != nil {
		return nil, err
	}

	optimized := OptimizeMoves(in.Moves)
	s := &SessionSummary{
		SessionID:         in.SessionID,
		StartedAt:         in.StartedAt,
		EndedAt:           in.EndedAt,
		TotalMoves:        len(in.Moves),
		OptimizedMoves:    len(optimized),
		Efficiency:        CalculateEfficiency(in.Moves, optimized),
		LongestPauseMs:    FindLongestPause(in.Moves),
		PauseCount:        CountPausesOver(in.Moves, DefaultPauseThresholdMs),
		AvgMoveDurationMs: CalculateAvgMoveDuration(in.Moves),
		Solved:            final.IsSolved(),
		Progress:          final.Progress().Percent(),
		Profile:           AnalyzeMovementProfile(in.Moves),
		Repetitions:       AnalyzeRepetitions(in.Moves),
	}

	end := in.StartedAt
	switch {
	case in.EndedAt != nil:
		end = *in.EndedAt
	case len(in.Moves) > 0:
		end = in.Moves[len(in.Moves)-1].Time
	}
	if !in.StartedAt.IsZero() && end.After(in.StartedAt) {
		s.DurationMs = end.Sub(in.StartedAt).Milliseconds()
	}
	s.TPSOverall = CalculateTPS(in.Moves, s.DurationMs)

	return s, nil
}

// PauseInfo represents a pause between two moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

func gapMs(moves []slicecube.Move, i int) int64 {
	return moves[i].Time.Sub(moves[i-1].Time).Milliseconds()
}

// AnalyzePauses finds every gap of at least thresholdMs.
func AnalyzePauses(moves []slicecube.Move, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo
	for i := 1; i < len(moves); i++ {
		if gap := gapMs(moves, i); gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           moves[i-1].Time.UnixMilli(),
			})
		}
	}
	return pauses
}

// CalculateTPS calculates turns per second for a move sequence.
func CalculateTPS(moves []slicecube.Move, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(moves)) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []slicecube.Move) float64 {
	if len(moves) < 2 {
		return 0
	}
	total := moves[len(moves)-1].Time.Sub(moves[0].Time).Milliseconds()
	return float64(total) / float64(len(moves)-1)
}

// FindLongestPause returns the longest gap between consecutive moves.
func FindLongestPause(moves []slicecube.Move) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		if gap := gapMs(moves, i); gap > longest {
			longest = gap
		}
	}
	return longest
}

// CountPausesOver counts gaps strictly longer than thresholdMs.
func CountPausesOver(moves []slicecube.Move, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		if gapMs(moves, i) > thresholdMs {
			count++
		}
	}
	return count
}

// MovementProfile counts how often each slice and direction is used.
type MovementProfile struct {
	SliceCounts     [slicecube.NumSlices]int     `json:"slice_counts"`
	DirectionCounts [slicecube.NumDirections]int `json:"direction_counts"`
	MiddleMoves     int                          `json:"middle_moves"`
	MostUsedSlice   slicecube.Slice              `json:"most_used_slice"`
	SlicePairs      map[string]int               `json:"slice_pairs"` // e.g. "17" -> count
}

// AnalyzeMovementProfile counts slice and direction usage. MostUsedSlice is
// zero for an empty sequence; ties go to the lowest slice.
func AnalyzeMovementProfile(moves []slicecube.Move) *MovementProfile {
	profile := &MovementProfile{SlicePairs: make(map[string]int)}

	for i, m := range moves {
		if !m.Valid() {
			continue
		}
		profile.SliceCounts[m.Slice-slicecube.MinSlice]++
		profile.DirectionCounts[m.Direction]++
		if m.Slice.IsMiddle() {
			profile.MiddleMoves++
		}
		if i > 0 && moves[i-1].Valid() {
			pair := string(rune('0'+moves[i-1].Slice)) + string(rune('0'+m.Slice))
			profile.SlicePairs[pair]++
		}
	}

	best := 0
	for i, n := range profile.SliceCounts {
		if n > best {
			best = n
			profile.MostUsedSlice = slicecube.Slice(i) + slicecube.MinSlice
		}
	}

	return profile
}
