package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/tui"
)

var (
	playRecord bool
	playSeed   uint64
	playMoves  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Turn slices from the keyboard.

Keys:
  1-9            turn slice clockwise
  shift+1-9      turn slice counter-clockwise (! @ # $ % ^ & * ()
  u              undo
  s              scramble
  r              reset
  d              toggle facelet dump
  q              quit

With --record the moves go to the active session, or to a new one.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record moves to a session")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for reproducible scrambles")
	playCmd.Flags().IntVar(&playMoves, "moves", 0, "Number of scramble moves (default: SLICECUBE_SCRAMBLE_MOVES)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := []tui.Option{
		tui.WithScrambler(newScrambler(cmd, playSeed, playMoves)),
		tui.WithRenderer(renderer()),
	}

	if !playRecord {
		return tui.Run(slicecube.NewTracker(), opts...)
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
	if errors.Is(err, recorder.ErrNoSession) {
		session = recorder.NewSession(db, stateFile)
		if _, err = session.Start(nil, "interactive"); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
	} else if err != nil {
		return err
	}

	opts = append(opts, tui.WithTitle("Slice Cube - session "+session.SessionID()[:8]))
	if err := tui.Run(session, opts...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Session %s: %d moves recorded\n", session.SessionID(), session.MoveCount())
	fmt.Fprintln(cmd.OutOrStdout(), "End it with: slicecube end")
	return nil
}
