package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/analysis"
	"github.com/SeamusWaldron/slicecube/internal/notation"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/storage"
)

const (
	minNGram = 2
	maxNGram = 8
)

var (
	summaryLast bool
	summaryJSON bool
	summaryTopK int

	reportLast      bool
	reportOutputDir string

	exportLast   bool
	exportFormat string
	exportOutput string

	patternsWindow int
	patternsTopK   int
)

var summaryCmd = &cobra.Command{
	Use:   "summary [session-id]",
	Short: "Summarize a recorded session",
	Long: `Print statistics for a session: duration, turns per second, pauses,
wasted moves, slice usage and the most repeated move sequences.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Write analysis files for a session",
	Long: `Write analysis files for a session into a directory.

Files:
  summary.json            Overview statistics
  moves.txt               Move sequence in notation
  moves.json              Detailed move data
  repetition_report.json  Cancellations, folds, back-and-forth patterns
  ngram_report.json       Repeated move sequences`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export the moves of a session",
	Long: `Export the move sequence of a session as notation, JSON or plain words.

Examples:
  slicecube export --last
  slicecube export <session-id> --format json
  slicecube export <session-id> --format words -o moves.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Find move sequences repeated across sessions",
	Args:  cobra.NoArgs,
	RunE:  runPatterns,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryLast, "last", false, "Summarize the most recent session")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print the summary as JSON")
	summaryCmd.Flags().IntVar(&summaryTopK, "top", 3, "Repeated sequences to show per length")

	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportLast, "last", false, "Report on the most recent session")
	reportCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: ./reports/<started-at>)")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the most recent session")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, words)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().IntVar(&patternsWindow, "window", 50, "Number of recent sessions to analyze")
	patternsCmd.Flags().IntVar(&patternsTopK, "top", 5, "Sequences to show per length")
}

// loadSession replays a stored session and summarizes it.
func loadSession(db *storage.DB, sessionID string) (*storage.Session, *slicecube.Tracker, *analysis.SessionSummary, error) {
	sess, tracker, err := recorder.Replay(db, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	summary, err := analysis.Summarize(analysis.SessionInput{
		SessionID: sess.SessionID,
		StartedAt: sess.StartedAt,
		EndedAt:   sess.EndedAt,
		Start:     tracker.Start(),
		Moves:     tracker.Moves(),
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to summarize session: %w", err)
	}
	return sess, tracker, summary, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, summaryLast)
	if err != nil {
		return err
	}

	_, tracker, summary, err := loadSession(db, sessionID)
	if err != nil {
		return err
	}
	ngrams := analysis.MineNGrams(tracker.Moves(), minNGram, maxNGram, summaryTopK)

	out := cmd.OutOrStdout()
	if summaryJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*analysis.SessionSummary
			NGrams *analysis.NGramReport `json:"ngrams"`
		}{summary, ngrams})
	}

	printSummary(out, summary)
	printNGrams(out, ngrams)
	return nil
}

func printSummary(w io.Writer, s *analysis.SessionSummary) {
	printHeading(w, "Session Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ID:         %s\n", s.SessionID)
	fmt.Fprintf(w, "Started:    %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Fprintf(w, "Ended:      %s\n", s.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(w, "Duration:   %s\n", formatDuration(time.Duration(s.DurationMs)*time.Millisecond))
	fmt.Fprintf(w, "Moves:      %d (optimized %d, efficiency %.0f%%)\n", s.TotalMoves, s.OptimizedMoves, s.Efficiency*100)
	fmt.Fprintf(w, "TPS:        %.2f\n", s.TPSOverall)
	fmt.Fprintf(w, "Avg move:   %.0fms\n", s.AvgMoveDurationMs)
	fmt.Fprintf(w, "Pauses:     %d over %dms, longest %dms\n", s.PauseCount, analysis.DefaultPauseThresholdMs, s.LongestPauseMs)
	fmt.Fprintf(w, "Solved:     %s (%.0f%% of facelets in place)\n", yesNo(s.Solved), s.Progress)

	if p := s.Profile; p != nil && s.TotalMoves > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerText("Slice usage"))
		for i, n := range p.SliceCounts {
			sl := slicecube.Slice(i) + slicecube.MinSlice
			fmt.Fprintf(w, "  %d %-16s %4d %s\n", sl, notation.LayerName(sl), n, strings.Repeat("#", n*30/s.TotalMoves))
		}
		fmt.Fprintf(w, "  clockwise %d, counter-clockwise %d, middle slices %d\n",
			p.DirectionCounts[slicecube.CW], p.DirectionCounts[slicecube.CCW], p.MiddleMoves)
	}

	if r := s.Repetitions; r != nil && r.TotalWastedMoves > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerText("Wasted moves"))
		fmt.Fprintf(w, "  cancellations:  %d\n", len(r.ImmediateCancellations))
		fmt.Fprintf(w, "  folds:          %d\n", len(r.FoldOpportunities))
		fmt.Fprintf(w, "  back-and-forth: %d\n", len(r.BackAndForthPatterns))
		fmt.Fprintf(w, "  total wasted:   %s\n", warnText(r.TotalWastedMoves))
	}
}

func printNGrams(w io.Writer, report *analysis.NGramReport) {
	lengths := make([]int, 0, len(report.TopNGrams))
	for n, list := range report.TopNGrams {
		if len(list) > 0 {
			lengths = append(lengths, n)
		}
	}
	if len(lengths) == 0 {
		return
	}
	sort.Ints(lengths)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerText("Repeated sequences"))
	for _, n := range lengths {
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(w, "  %-24s x%d\n", ng.Sequence, ng.Count)
		}
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, reportLast)
	if err != nil {
		return err
	}

	sess, tracker, summary, err := loadSession(db, sessionID)
	if err != nil {
		return err
	}
	moves := tracker.Moves()

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = filepath.Join("reports", sess.StartedAt.Local().Format("2006-01-02_150405"))
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Analyzing session...")

	if err := writeJSON(filepath.Join(outputDir, "summary.json"), summary); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "moves.txt"), []byte(slicecube.FormatMoves(moves)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write moves.txt: %w", err)
	}
	if err := writeJSON(filepath.Join(outputDir, "moves.json"), movesJSON(sess, moves)); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outputDir, "repetition_report.json"), summary.Repetitions); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outputDir, "ngram_report.json"), analysis.MineNGrams(moves, minNGram, maxNGram, 10)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Report written to %s\n", outputDir)
	return nil
}

type moveJSON struct {
	MoveIndex   int    `json:"move_index"`
	TsMs        int64  `json:"ts_ms"`
	Direction   int    `json:"direction"`
	Slice       int    `json:"slice"`
	Notation    string `json:"notation"`
	Description string `json:"description"`
}

// movesJSON lists moves with timestamps relative to the session start.
func movesJSON(sess *storage.Session, moves []slicecube.Move) []moveJSON {
	out := make([]moveJSON, 0, len(moves))
	for i, m := range moves {
		out = append(out, moveJSON{
			MoveIndex:   i,
			TsMs:        m.Time.Sub(sess.StartedAt).Milliseconds(),
			Direction:   int(m.Direction),
			Slice:       int(m.Slice),
			Notation:    m.Notation(),
			Description: notation.Describe(m),
		})
	}
	return out
}

func writeJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, exportLast)
	if err != nil {
		return err
	}

	sess, tracker, err := recorder.Replay(db, sessionID)
	if err != nil {
		return err
	}
	moves := tracker.Moves()
	if len(moves) == 0 {
		return fmt.Errorf("no moves found for session %s", sessionID)
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "txt":
		output = slicecube.FormatMoves(moves)
	case "words":
		output = strings.Join(describeAll(moves), "\n")
	case "json":
		data, err := json.MarshalIndent(movesJSON(sess, moves), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)
	default:
		return fmt.Errorf("unknown format: %s (use txt, json or words)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	if dir := filepath.Dir(exportOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(moves), exportOutput)
	return nil
}

func describeAll(moves []slicecube.Move) []string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = fmt.Sprintf("%s  %s", m.Notation(), notation.Describe(m))
	}
	return lines
}

func runPatterns(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(patternsWindow)
	if err != nil {
		return err
	}

	moveRepo := storage.NewMoveRepository(db)
	ids := make([]string, 0, len(sessions))
	reports := make(map[string]*analysis.NGramReport, len(sessions))
	for _, s := range sessions {
		records, err := moveRepo.GetBySession(s.SessionID)
		if err != nil {
			return err
		}
		ids = append(ids, s.SessionID)
		reports[s.SessionID] = analysis.MineNGrams(storage.ToMoves(records), minNGram, maxNGram, patternsTopK*2)
	}

	merged := analysis.MineNGramsAcrossSessions(ids, reports, patternsTopK)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analyzed %d sessions\n", len(ids))
	if len(merged.TopNGrams) == 0 {
		fmt.Fprintln(out, "No repeated sequences found")
		return nil
	}
	printNGrams(out, merged)
	return nil
}
