package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube"
	"github.com/SeamusWaldron/slicecube/internal/notation"
)

var (
	scrambleSeed     uint64
	scrambleMoves    int
	scrambleDescribe bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Generate a scramble without touching any session.

Examples:
  slicecube scramble
  slicecube scramble --seed 7 --moves 20 --describe`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 0, "Number of moves (default: SLICECUBE_SCRAMBLE_MOVES)")
	scrambleCmd.Flags().BoolVar(&scrambleDescribe, "describe", false, "Spell out every move")
}

func runScramble(cmd *cobra.Command, args []string) error {
	c, moves := newScrambler(cmd, scrambleSeed, scrambleMoves).ScrambleSequence(slicecube.New())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble (%d moves):\n", len(moves))
	if scrambleDescribe {
		for i, m := range moves {
			fmt.Fprintf(out, "%4d  %-3s %s\n", i+1, m.Notation(), notation.Describe(m))
		}
	} else {
		for _, line := range wrapMoves(moves, 60) {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	fmt.Fprintln(out)
	printCube(out, c, len(moves))
	return nil
}
