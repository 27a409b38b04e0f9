package slicecube

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !IsSolved(c) {
		t.Error("IsSolved(New()) should be true")
	}
}

func TestNewCubeCanonicalColors(t *testing.T) {
	c := New()
	want := []Color{White, Red, Blue, Orange, Green, Yellow}
	for face := 0; face < NumFaces; face++ {
		for pos := 0; pos < FaceletsPerFace; pos++ {
			got, err := c.Get(face, pos)
			if err != nil {
				t.Fatalf("Get(%d, %d): %v", face, pos, err)
			}
			if got != want[face] {
				t.Errorf("Get(%d, %d) = %v, want %v", face, pos, got, want[face])
			}
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	c := New()
	cases := [][2]int{{6, 0}, {-1, 0}, {0, 9}, {0, -1}, {7, 12}}
	for _, tc := range cases {
		if _, err := c.Get(tc[0], tc[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d, %d) error = %v, want ErrIndexOutOfRange", tc[0], tc[1], err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := New()
	clone := orig.Clone()

	clone.facelets[FaceUp][0] = Yellow
	if orig.facelets[FaceUp][0] != White {
		t.Error("Modifying the clone should not affect the original")
	}

	orig.facelets[FaceDown][8] = White
	if clone.facelets[FaceDown][8] != Yellow {
		t.Error("Modifying the original should not affect the clone")
	}
}

func TestIsSolvedIgnoresCanonicalColors(t *testing.T) {
	// Every face monochrome, but no face in its canonical color.
	var c Cube
	for face := 0; face < NumFaces; face++ {
		color := Color((face + 1) % NumColors)
		for i := 0; i < FaceletsPerFace; i++ {
			c.facelets[face][i] = color
		}
	}
	if !c.IsSolved() {
		t.Error("Monochrome faces should count as solved")
	}

	c.facelets[FaceFront][2] = Yellow
	if c.IsSolved() {
		t.Error("A single odd facelet should break solved")
	}
}

func TestColorCounts(t *testing.T) {
	counts := New().ColorCounts()
	for color, n := range counts {
		if n != FaceletsPerFace {
			t.Errorf("color %v count = %d, want %d", Color(color), n, FaceletsPerFace)
		}
	}
}

func TestProgress(t *testing.T) {
	p := New().Progress()
	if !p.Solved || p.SolvedFaces != NumFaces || p.MatchingTotal() != NumFacelets {
		t.Errorf("solved cube progress = %+v", p)
	}
	if p.Percent() != 100 {
		t.Errorf("Percent() = %v, want 100", p.Percent())
	}

	c, err := Apply(New(), CW, 1)
	if err != nil {
		t.Fatal(err)
	}
	p = c.Progress()
	if p.Solved {
		t.Error("Cube should not be solved after slice 1")
	}
	// Only the left and right faces are untouched by slice 1.
	if p.SolvedFaces != 2 {
		t.Errorf("SolvedFaces = %d, want 2", p.SolvedFaces)
	}
	if p.Matching[FaceUp] != 6 {
		t.Errorf("Matching[Up] = %d, want 6", p.Matching[FaceUp])
	}
}

func TestRender(t *testing.T) {
	out := Render(New())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != NumFaces*(FaceletsPerFace+1) {
		t.Fatalf("Render produced %d lines, want %d", len(lines), NumFaces*(FaceletsPerFace+1))
	}
	if lines[0] != "Face 0 (U):" {
		t.Errorf("first header = %q", lines[0])
	}
	if lines[1] != "white" || lines[10] != "Face 1 (F):" || lines[11] != "red" {
		t.Errorf("unexpected render output:\n%s", out)
	}
	if lines[len(lines)-1] != "yellow" {
		t.Errorf("last line = %q, want yellow", lines[len(lines)-1])
	}
}

func TestStringNet(t *testing.T) {
	out := New().String()
	if got := strings.Count(out, "\n"); got != 9 {
		t.Errorf("net has %d lines, want 9", got)
	}
	if !strings.HasPrefix(out, "      W W W") {
		t.Errorf("net should start with the up face:\n%s", out)
	}
}
