package shape

// SetSpeed points every paired particle at its coordinate with a velocity
// that covers the remaining gap in frameDivisor ticks.
func SetSpeed(particles []*Particle, coords []Point2D, frameDivisor float64) {
	for _, pt := range coords {
		p, ok := assigned(particles, pt)
		if !ok {
			continue
		}
		p.VX = (pt.X - p.X) / frameDivisor
		p.VY = (pt.Y - p.Y) / frameDivisor
	}
}

// CheckArrival stops every axis that is within size/arrivalDivisor of its
// target and reports whether all paired particles have arrived on both axes.
func CheckArrival(particles []*Particle, coords []Point2D, arrivalDivisor float64) bool {
	all := true
	for _, pt := range coords {
		p, ok := assigned(particles, pt)
		if !ok {
			continue
		}

		tolX := p.Width / arrivalDivisor
		if p.X >= pt.X-tolX && p.X <= pt.X+tolX {
			p.VX = 0
		} else {
			all = false
		}

		tolY := p.Height / arrivalDivisor
		if p.Y >= pt.Y-tolY && p.Y <= pt.Y+tolY {
			p.VY = 0
		} else {
			all = false
		}
	}
	return all
}
