// Package analysis computes statistics over recorded move sequences.
package analysis

import (
	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/notation"
)

// Cancellation is a move immediately followed by its inverse (e.g. 4 4').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
	TsMs   int64  `json:"ts_ms"`
}

// FoldOpportunity is three identical quarter turns in a row, which one
// turn the other way would replace (e.g. 7 7 7 -> 7').
type FoldOpportunity struct {
	StartIndex int    `json:"start_index"`
	Move       string `json:"move"`
	FoldedMove string `json:"folded_move"`
	TsMs       int64  `json:"ts_ms"`
}

// BackAndForthPattern is a pair of moves repeated in alternation
// (e.g. 1 7 1 7 1 7).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
	TsMs       int64    `json:"ts_ms"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	FoldOpportunities      []FoldOpportunity     `json:"fold_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

// AnalyzeRepetitions looks for wasted motion in a move sequence.
func AnalyzeRepetitions(moves []slicecube.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		FoldOpportunities:      []FoldOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	// A move cancels at most one neighbour.
	for i := 0; i+1 < len(moves); {
		m1, m2 := moves[i], moves[i+1]
		if m1.Slice == m2.Slice && m1.Direction != m2.Direction {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
				TsMs:   m1.Time.UnixMilli(),
			})
			report.TotalWastedMoves += 2
			i += 2
			continue
		}
		i++
	}

	for i := 0; i+2 < len(moves); {
		m := moves[i]
		if moves[i+1].SameTurn(m) && moves[i+2].SameTurn(m) {
			report.FoldOpportunities = append(report.FoldOpportunities, FoldOpportunity{
				StartIndex: i,
				Move:       m.Notation(),
				FoldedMove: m.Inverse().Notation(),
				TsMs:       m.Time.UnixMilli(),
			})
			report.TotalWastedMoves += 2
			i += 3
			continue
		}
		i++
	}

	report.BackAndForthPatterns = findBackAndForth(moves)
	return report
}

// findBackAndForth finds alternating pairs repeated at least three times.
func findBackAndForth(moves []slicecube.Move) []BackAndForthPattern {
	var patterns []BackAndForthPattern

	i := 0
	for i+3 < len(moves) {
		a, b := moves[i], moves[i+1]
		if a.SameTurn(b) {
			i++
			continue
		}

		count := 1
		j := i + 2
		for j+1 < len(moves) && moves[j].SameTurn(a) && moves[j+1].SameTurn(b) {
			count++
			j += 2
		}

		if count >= 3 {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
				TsMs:       a.Time.UnixMilli(),
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// OptimizeMoves returns the sequence with cancellations and folds applied.
func OptimizeMoves(moves []slicecube.Move) []slicecube.Move {
	return notation.Simplify(moves)
}

// CalculateEfficiency returns len(optimized)/len(original), or 1 for an
// empty sequence.
func CalculateEfficiency(original, optimized []slicecube.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
