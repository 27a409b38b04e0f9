// Package cli implements the command-line interface for slicecube.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/slicecube/internal/config"
	"github.com/SeamusWaldron/slicecube/internal/display"
	"github.com/SeamusWaldron/slicecube/internal/recorder"
	"github.com/SeamusWaldron/slicecube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
	noColor bool

	// cfg is loaded before every command runs.
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "slicecube",
	Short: "Slice Cube simulator and session recorder",
	Long: `Slice Cube - a 3x3x3 twisty puzzle driven by nine addressable slices.

Every move turns one slice a quarter turn: slices 1-3 are the columns seen
from the front, 4-6 the layers parallel to the front face, 7-9 the rows.
A trailing ' turns the slice counter-clockwise (for example 7').

Start a session, turn slices, undo, and analyse recorded sessions later.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.slicecube/slicecube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadConfig reads the environment and applies the global flags on top.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if noColor {
		c.NoColor = true
	}
	cfg = c

	if cfg.NoColor {
		color.NoColor = true
	}

	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFlags(log.Ltime | log.Lmicroseconds)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("database: %s, state: %s", cfg.DBPath, cfg.StatePath)

	return nil
}

func openDB() (*storage.DB, error) {
	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func openStateFile() (*recorder.StateFile, error) {
	sf, err := recorder.NewStateFile(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

func renderer() display.Renderer {
	return display.Renderer{NoColor: cfg.NoColor}
}
