package slicecube

// Progress summarizes how close a cube is to the solved state.
// It only looks at each face against its own center, like IsSolved.
type Progress struct {
	// Matching[f] counts the facelets of face f equal to its center (1..9).
	Matching    [NumFaces]int
	SolvedFaces int
	Solved      bool
}

// Progress computes the per-face progress of c.
func (c Cube) Progress() Progress {
	var p Progress
	for face := 0; face < NumFaces; face++ {
		center := c.facelets[face][Center]
		for i := 0; i < FaceletsPerFace; i++ {
			if c.facelets[face][i] == center {
				p.Matching[face]++
			}
		}
		if p.Matching[face] == FaceletsPerFace {
			p.SolvedFaces++
		}
	}
	p.Solved = p.SolvedFaces == NumFaces
	return p
}

// MatchingTotal returns the number of facelets matching their face's center.
func (p Progress) MatchingTotal() int {
	total := 0
	for _, n := range p.Matching {
		total += n
	}
	return total
}

// Percent returns MatchingTotal as a percentage of all facelets.
func (p Progress) Percent() float64 {
	return float64(p.MatchingTotal()) * 100 / NumFacelets
}
