// Package slicecube models a 3x3x3 twisty puzzle as 54 colored facelets and
// the 18 quarter turns that rearrange them.
//
// # Features
//
//   - Immutable cube snapshots (Cube is a value type)
//   - 9 independently addressable slices, each turnable in 2 directions
//   - Table-driven move engine: one permutation per (slice, direction)
//   - Reproducible scrambling with an injectable source of randomness
//   - Solved check, per-face progress and a plain-text dump
//
// # Quick Start
//
//	c := slicecube.New()
//
//	c, err := slicecube.Apply(c, slicecube.CW, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", c.IsSolved())
//	fmt.Print(slicecube.Render(c))
//
// # Layout
//
// Faces are numbered 0 (up), 1 (front), 2..4 (left, back, right: the side
// faces going clockwise seen from the top) and 5 (down). Facelets on each
// face are numbered row-major 0..8, so 4 is the center.
//
// # Slices
//
// Slices 1-3 are the column layers from left to right, 4-6 the layers
// parallel to the front face from back to front, and 7-9 the horizontal
// layers from top to bottom. Turning an outer slice (1, 3, 4, 6, 7, 9) also
// rotates the face it carries; the middle slices (2, 5, 8) carry no face.
//
// # Scrambling
//
//	s := slicecube.NewScrambler(slicecube.WithRand(rand.New(rand.NewPCG(1, 2))))
//	scrambled, moves := s.ScrambleSequence(slicecube.New())
//	fmt.Println(slicecube.FormatMoves(moves))
package slicecube
