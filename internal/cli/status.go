package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and session status",
	Long:  `Display the database in use, its schema version, recorded sessions and the active session, if any.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeading(out, "Slice Cube Status")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Database: %s\n", cfg.DBPath)
	fmt.Fprintf(out, "State:    %s\n", stateFile.Path())

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if version, err := db.CurrentVersion(); err == nil {
		fmt.Fprintf(out, "Schema:   v%d (latest v%d)\n", version, storage.LatestVersion())
	}

	sessionRepo := storage.NewSessionRepository(db)
	if last, err := sessionRepo.GetLast(); err == nil && last != nil {
		fmt.Fprintf(out, "Last session: %s\n", last.StartedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if all, err := sessionRepo.List(10000); err == nil {
		fmt.Fprintf(out, "Total sessions: %d\n", len(all))
	}
	fmt.Fprintln(out)

	if !stateFile.HasActiveSession() {
		fmt.Fprintln(out, "No active session")
		return nil
	}

	session, err := activeSession(db, stateFile)
	if err != nil {
		fmt.Fprintf(out, "Active session unavailable: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Active session: %s\n", warnText(session.SessionID()))
	fmt.Fprintf(out, "  Moves: %d\n", session.MoveCount())
	fmt.Fprintf(out, "  Progress: %.0f%%\n", session.Cube().Progress().Percent())
	fmt.Fprintln(out, "  (Use 'slicecube end' to finish or 'slicecube play --record' to continue)")

	return nil
}
