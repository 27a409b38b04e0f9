package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube/internal/notation"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/storage"
	"github.com/SeamusWaldron/slicecube/internal/tui"
)

var (
	historyLimit  int
	replayLast    bool
	replayAnimate bool
	replaySpeed   float64
	replayStep    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay the moves of a stored session from its starting cube.

By default the moves are listed with their timing and the final cube is
shown. With --animate the session plays back in the terminal.

Examples:
  slicecube replay --last
  slicecube replay <session-id> --animate --speed 2
  slicecube replay <session-id> --animate --step`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to display")

	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().BoolVar(&replayAnimate, "animate", false, "Play the session back interactively")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

// resolveSessionID picks the session named in args, or the latest one when
// last is set.
func resolveSessionID(db *storage.DB, args []string, last bool) (string, error) {
	if last {
		s, err := storage.NewSessionRepository(db).GetLast()
		if err != nil {
			return "", fmt.Errorf("failed to get last session: %w", err)
		}
		if s == nil {
			return "", fmt.Errorf("no sessions found")
		}
		return s.SessionID, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("please provide a session ID or use --last")
	}
	return args[0], nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	sessions, err := sessionRepo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start a new session with: slicecube new")
		return nil
	}

	fmt.Fprintf(out, "Recent sessions (showing %d):\n\n", len(sessions))
	fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "Solved", "Notes")
	fmt.Fprintln(out, "------------------------------------  -------------------  ----------  ------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		moves := "-"
		if n, err := moveRepo.Count(s.SessionID); err == nil && n > 0 {
			moves = fmt.Sprintf("%d", n)
		}

		solved := "no"
		if s.SolvedAt != nil {
			solved = "yes"
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if !s.Ended() {
			status = warnText(" (active)")
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			moves,
			solved,
			notes,
			status,
		)
	}

	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, replayLast)
	if err != nil {
		return err
	}

	sess, tracker, err := recorder.Replay(db, sessionID)
	if err != nil {
		return err
	}
	moves := tracker.Moves()

	if replayAnimate {
		m := tui.NewReplay(tracker.Start(), moves, replaySpeed, replayStep)
		m.SetRenderer(renderer())
		return tui.RunReplay(m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", sess.SessionID)
	if scramble := sess.Scramble(); scramble != "" {
		fmt.Fprintf(out, "Scramble: %s\n", scramble)
	}
	fmt.Fprintln(out)

	if len(moves) == 0 {
		fmt.Fprintln(out, "No moves recorded")
	}
	for i, m := range moves {
		offset := m.Time.Sub(sess.StartedAt)
		fmt.Fprintf(out, "%4d  %9s  %-3s %s\n", i+1, formatDuration(offset), m.Notation(), notation.Describe(m))
	}
	fmt.Fprintln(out)
	printCube(out, tracker.Cube(), len(moves))

	return nil
}
