package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/slicecube"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"SLICECUBE_DB", "SLICECUBE_STATE", "SLICECUBE_SCRAMBLE_MOVES", "SLICECUBE_NO_COLOR"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScrambleMoves != slicecube.DefaultScrambleMoves {
		t.Fatalf("expected %d scramble moves, got %d", slicecube.DefaultScrambleMoves, cfg.ScrambleMoves)
	}
	if cfg.DBPath != filepath.Join(home, ".slicecube", "slicecube.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.StatePath != filepath.Join(home, ".slicecube", "state.json") {
		t.Fatalf("unexpected state path %q", cfg.StatePath)
	}
	if cfg.NoColor {
		t.Fatal("expected color enabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SLICECUBE_DB", "/data/cube.db")
	t.Setenv("SLICECUBE_STATE", "/data/state.json")
	t.Setenv("SLICECUBE_SCRAMBLE_MOVES", "25")
	t.Setenv("SLICECUBE_NO_COLOR", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{DBPath: "/data/cube.db", StatePath: "/data/state.json", ScrambleMoves: 25, NoColor: true}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}

	s := slicecube.NewScrambler(cfg.ScrambleOptions()...)
	if s.MoveCount() != 25 {
		t.Fatalf("expected scrambler with 25 moves, got %d", s.MoveCount())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SLICECUBE_DB", "/data/cube.db")
	t.Setenv("SLICECUBE_STATE", "/data/state.json")

	t.Setenv("SLICECUBE_SCRAMBLE_MOVES", "lots")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("SLICECUBE_SCRAMBLE_MOVES", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}
