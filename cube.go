package slicecube

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Red    Color = 1 // Front face when solved
	Blue   Color = 2 // Left face when solved
	Orange Color = 3 // Back face when solved
	Green  Color = 4 // Right face when solved
	Yellow Color = 5 // Down face when solved
)

// NumColors is the number of distinct facelet colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the six facelet colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// Face identifies one of the six faces.
//
// The numbering is fixed: every permutation table is written against it.
type Face int

const (
	FaceUp    Face = 0
	FaceFront Face = 1
	FaceLeft  Face = 2 // side faces 2..4 run clockwise seen from the top
	FaceBack  Face = 3
	FaceRight Face = 4
	FaceDown  Face = 5
)

const (
	// NumFaces is the number of faces on the cube.
	NumFaces = 6
	// FaceletsPerFace is the number of facelets on each face.
	FaceletsPerFace = 9
	// NumFacelets is the total number of facelets.
	NumFacelets = NumFaces * FaceletsPerFace
	// Center is the position index of a face's center facelet.
	Center = 4
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceFront:
		return "F"
	case FaceLeft:
		return "L"
	case FaceBack:
		return "B"
	case FaceRight:
		return "R"
	case FaceDown:
		return "D"
	default:
		return "?"
	}
}

// SolvedColor returns the color face f carries in the solved state.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Cell addresses one facelet.
type Cell struct {
	Face     Face
	Position int
}

func (c Cell) index() int {
	return int(c.Face)*FaceletsPerFace + c.Position
}

func cellAt(index int) Cell {
	return Cell{Face: Face(index / FaceletsPerFace), Position: index % FaceletsPerFace}
}

func (c Cell) String() string {
	return fmt.Sprintf("%s%d", c.Face, c.Position)
}

// Cube is an immutable snapshot of the 54 facelets.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Cube is a value type: moves return a new Cube and never modify the receiver,
// so snapshots may be shared between goroutines without locking.
type Cube struct {
	facelets [NumFaces][FaceletsPerFace]Color
}

// New creates a solved cube: every face filled with its canonical color.
func New() Cube {
	var c Cube
	for face := Face(0); face < NumFaces; face++ {
		color := face.SolvedColor()
		for i := 0; i < FaceletsPerFace; i++ {
			c.facelets[face][i] = color
		}
	}
	return c
}

// Clone returns an independent copy of the cube.
func (c Cube) Clone() Cube {
	// The facelet array is copied by value.
	return c
}

// Get returns the color at the given face and position.
func (c Cube) Get(face, position int) (Color, error) {
	if face < 0 || face >= NumFaces || position < 0 || position >= FaceletsPerFace {
		return 0, fmt.Errorf("face %d position %d: %w", face, position, ErrIndexOutOfRange)
	}
	return c.facelets[face][position], nil
}

// At returns the color of a cell, which the caller guarantees is in range.
func (c Cube) At(cell Cell) Color {
	return c.facelets[cell.Face][cell.Position]
}

// Facelets returns a copy of the raw facelet array.
func (c Cube) Facelets() [NumFaces][FaceletsPerFace]Color {
	return c.facelets
}

// Equal reports whether both cubes have identical facelets.
func (c Cube) Equal(other Cube) bool {
	return c.facelets == other.facelets
}

// ColorCounts returns how many facelets carry each color.
func (c Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for f := 0; f < NumFaces; f++ {
		for i := 0; i < FaceletsPerFace; i++ {
			if color := c.facelets[f][i]; color.Valid() {
				counts[color]++
			}
		}
	}
	return counts
}

// IsSolved reports whether every face is a single color.
func (c Cube) IsSolved() bool {
	return IsSolved(c)
}

// IsSolved reports whether each face's nine facelets match that face's center.
// The colors are not compared against the canonical assignment.
func IsSolved(c Cube) bool {
	for face := 0; face < NumFaces; face++ {
		center := c.facelets[face][Center]
		for i := 0; i < FaceletsPerFace; i++ {
			if c.facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// String returns the cube as an unfolded net.
func (c Cube) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.facelets[FaceUp][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.facelets[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.facelets[FaceDown][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Render returns a plain debug dump: a header per face, in index order,
// followed by the color of each of its nine facelets on its own line.
func Render(c Cube) string {
	var sb strings.Builder
	for face := Face(0); face < NumFaces; face++ {
		fmt.Fprintf(&sb, "Face %d (%s):\n", int(face), face)
		for i := 0; i < FaceletsPerFace; i++ {
			sb.WriteString(c.facelets[face][i].Name())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
