package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/notation"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/storage"
)

var (
	newScramble bool
	newFrom     string
	newSeed     uint64
	newMoves    int
	newNotes    string
	showDebug   bool
	showID      string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session",
	Long: `Start a new recorded session. The cube starts solved unless a scramble
is requested.

Examples:
  slicecube new
  slicecube new --scramble --seed 42 --moves 25
  slicecube new --from "1 7' 5"`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var turnCmd = &cobra.Command{
	Use:   "turn <moves...>",
	Short: "Turn slices in the active session",
	Long: `Apply one or more moves to the active session.

Examples:
  slicecube turn 1
  slicecube turn 1 7' 1' 7`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurn,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last move of the active session",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cube of the active session",
	Long:  `Show the cube of the active session, or of any stored session with --id.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session",
	Args:  cobra.NoArgs,
	RunE:  runEnd,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolVar(&newScramble, "scramble", false, "Start from a random scramble")
	newCmd.Flags().StringVar(&newFrom, "from", "", "Start from this move sequence")
	newCmd.Flags().Uint64Var(&newSeed, "seed", 0, "Seed for a reproducible scramble")
	newCmd.Flags().IntVar(&newMoves, "moves", 0, "Number of scramble moves (default: SLICECUBE_SCRAMBLE_MOVES)")
	newCmd.Flags().StringVar(&newNotes, "notes", "", "Notes for this session")
	newCmd.MarkFlagsMutuallyExclusive("scramble", "from")

	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(undoCmd)

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showDebug, "debug", false, "Also dump every facelet")
	showCmd.Flags().StringVar(&showID, "id", "", "Session ID to show instead of the active one")

	rootCmd.AddCommand(endCmd)
}

// newScrambler builds a scrambler from the config, an optional move count
// and a seed that is only used when the seed flag was given.
func newScrambler(cmd *cobra.Command, seed uint64, moves int) *slicecube.Scrambler {
	opts := cfg.ScrambleOptions()
	opts = append(opts, slicecube.WithMoveCount(moves))
	if cmd.Flags().Changed("seed") {
		return slicecube.NewSeededScrambler(seed, opts...)
	}
	return slicecube.NewScrambler(opts...)
}

// activeSession resumes the session the state file points at. A pointer to
// a session that is gone or already ended is cleared.
func activeSession(db *storage.DB, sf *recorder.StateFile) (*recorder.Session, error) {
	if !sf.HasActiveSession() {
		return nil, fmt.Errorf("%w\nStart one with: slicecube new", recorder.ErrNoSession)
	}

	session := recorder.NewSession(db, sf)
	if err := session.Resume(sf.ActiveSessionID()); err != nil {
		if errors.Is(err, recorder.ErrSessionNotFound) || errors.Is(err, recorder.ErrSessionEnded) {
			if clearErr := sf.ClearActiveSession(); clearErr != nil {
				log.Printf("failed to clear stale session: %v", clearErr)
			}
		}
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	return session, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	if stateFile.HasActiveSession() {
		return fmt.Errorf("%w: %s\nUse 'slicecube end' to finish it first", recorder.ErrSessionActive, stateFile.ActiveSessionID())
	}

	var scramble []slicecube.Move
	switch {
	case newFrom != "":
		scramble, err = slicecube.ParseMoves(newFrom)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	case newScramble:
		_, scramble = newScrambler(cmd, newSeed, newMoves).ScrambleSequence(slicecube.New())
	}

	session := recorder.NewSession(db, stateFile)
	sessionID, err := session.Start(scramble, newNotes)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if err := stateFile.SetDBPath(db.Path()); err != nil {
		log.Printf("failed to save database path: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Started session: %s\n", sessionID)
	if len(scramble) > 0 {
		fmt.Fprintf(out, "Scramble (%d moves):\n", len(scramble))
		for _, line := range wrapMoves(scramble, 60) {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	fmt.Fprintln(out)
	printCube(out, session.Cube(), 0)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Turn slices with: slicecube turn 1 7'")
	fmt.Fprintln(out, "Or play interactively: slicecube play --record")

	return nil
}

func runTurn(cmd *cobra.Command, args []string) error {
	moves, err := slicecube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	session, err := activeSession(db, stateFile)
	if err != nil {
		return err
	}

	solvedAt := 0
	session.SetSolvedCallback(func(_ slicecube.Cube, moveCount int) {
		solvedAt = moveCount
	})

	applyErr := session.Apply(moves...)

	out := cmd.OutOrStdout()
	if applied := session.MoveCount(); applied > 0 {
		last := session.Moves()[applied-1]
		fmt.Fprintf(out, "Last move: %s (%s)\n\n", last.Notation(), notation.Describe(last))
	}
	printCube(out, session.Cube(), session.MoveCount())

	if applyErr != nil {
		return fmt.Errorf("failed to apply moves: %w", applyErr)
	}
	if solvedAt > 0 {
		fmt.Fprintln(out, successText(fmt.Sprintf("Solved after %d moves!", solvedAt)))
	}
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	session, err := activeSession(db, stateFile)
	if err != nil {
		return err
	}

	m, err := session.Undo()
	if err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Undid: %s (%s)\n\n", m.Notation(), notation.Describe(m))
	printCube(out, session.Cube(), session.MoveCount())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		sessionID string
		tracker   *slicecube.Tracker
	)
	if showID != "" {
		_, tracker, err = recorder.Replay(db, showID)
		if err != nil {
			return err
		}
		sessionID = showID
	} else {
		stateFile, err := openStateFile()
		if err != nil {
			return err
		}
		session, err := activeSession(db, stateFile)
		if err != nil {
			return err
		}
		sessionID = session.SessionID()
		tracker = slicecube.NewTrackerFrom(session.StartCube())
		if err := tracker.Apply(session.Moves()...); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n\n", sessionID)
	printCube(out, tracker.Cube(), tracker.MoveCount())

	if moves := tracker.Moves(); len(moves) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Moves:")
		for _, line := range wrapMoves(moves, 60) {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}

	if showDebug {
		fmt.Fprintln(out)
		fmt.Fprint(out, slicecube.Render(tracker.Cube()))
	}
	return nil
}

func runEnd(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	session, err := activeSession(db, stateFile)
	if err != nil {
		return err
	}
	sessionID := session.SessionID()
	moveCount := session.MoveCount()
	solved := session.Cube().IsSolved()

	if err := session.End(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	stored, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session ended: %s\n\n", sessionID)
	if stored != nil && stored.DurationMs != nil {
		duration := time.Duration(*stored.DurationMs) * time.Millisecond
		fmt.Fprintf(out, "Duration: %s\n", formatDuration(duration))
		if *stored.DurationMs > 0 && moveCount > 0 {
			fmt.Fprintf(out, "TPS:      %.2f\n", float64(moveCount)/duration.Seconds())
		}
	}
	fmt.Fprintf(out, "Moves:    %d\n", moveCount)
	fmt.Fprintf(out, "Solved:   %s\n", yesNo(solved))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Summary: slicecube summary %s\n", sessionID)

	return nil
}
