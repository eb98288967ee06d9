package shape

// Assign pairs each particle, in slice order, with the nearest coordinate no
// earlier particle has claimed. The matching is greedy, not globally optimal.
// Ties go to the lower coordinate index. Extra particles or coordinates are
// left unpaired. It returns the number of pairs made.
func Assign(particles []*Particle, coords []Point2D) int {
	for i := range coords {
		coords[i].Release()
	}

	avail := make([]int, len(coords))
	for i := range avail {
		avail[i] = i
	}

	pairs := 0
	for pi, p := range particles {
		if len(avail) == 0 {
			break
		}
		if p == nil {
			continue
		}

		pos := p.Pos()
		best, bestDist := -1, 0.0
		for k, ci := range avail {
			d := pos.Distance(coords[ci].Vec())
			if best < 0 || d < bestDist {
				best, bestDist = k, d
			}
		}

		coords[avail[best]].Assign(pi)
		avail = append(avail[:best], avail[best+1:]...)
		pairs++
	}
	return pairs
}

// assigned resolves the particle paired with pt, if it is still in range.
func assigned(particles []*Particle, pt Point2D) (*Particle, bool) {
	idx, ok := pt.Particle()
	if !ok || idx >= len(particles) || particles[idx] == nil {
		return nil, false
	}
	return particles[idx], true
}
