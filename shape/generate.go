package shape

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// spiralRotation turns both spirals so the first arm starts pointing up.
	spiralRotation = -math.Pi / 2

	diamondStretchX = 0.6
	diamondStretchY = 1.3

	sunflowerSpread = 1.2
)

// Generate returns the target points for s around center, one per particle
// for most shapes. Particles are only read for their count and the size of
// the first one; all particles are assumed to share that size.
func Generate(s Shape, particles []*Particle, center Point2D) []Point2D {
	if len(particles) == 0 || particles[0] == nil {
		return nil
	}

	switch v := s.(type) {
	case Circle:
		return circleCoords(particles, center)
	case Square:
		return squareCoords(particles, center)
	case Diamond:
		return diamondCoords(particles, center)
	case Spiral:
		return spiralCoords(particles, center)
	case LooseSpiral:
		return looseSpiralCoords(particles, center)
	case Sunflower:
		return sunflowerCoords(particles, center, v.BaseAngle)
	}
	return nil
}

// circleCoords lays the particles out as a regular polygon whose side is one
// particle width. Nothing is produced when the polygon would not fit between
// the origin and the center.
func circleCoords(particles []*Particle, c Point2D) []Point2D {
	n := len(particles)
	w, h := particles[0].Width, particles[0].Height
	radius := w / (2 * math.Sin(math.Pi/float64(n)))
	if radius >= c.X || radius >= c.Y {
		return nil
	}

	alpha := 2 * math.Pi / float64(n)
	out := make([]Point2D, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * alpha
		out = append(out, Pt(
			c.X+math.Sin(angle)*radius-w/2,
			c.Y-math.Cos(angle)*radius-h/2,
		))
	}
	return out
}

// squareCoords emits the outline of a (layer+1)x(layer+1) grid with one
// particle width between cells, where layer is n/4. Counts that are not a
// multiple of four leave some particles without a target.
func squareCoords(particles []*Particle, c Point2D) []Point2D {
	layer := len(particles) / 4
	w := particles[0].Width

	rescale := 0.0
	if layer%2 == 0 {
		rescale = 0.5
	}
	k := -(float64(layer/2) + 0.5)

	out := make([]Point2D, 0, 4*layer+1)
	for a := 0; a <= layer; a++ {
		i := k + float64(a)
		for b := 0; b <= layer; b++ {
			j := k + float64(b)
			if a > 0 && a < layer && b > 0 && b < layer {
				continue
			}
			out = append(out, Pt(c.X-(j+rescale)*w, c.Y-(i-rescale)*w))
		}
	}
	return out
}

// diamondCoords turns the square outline 45 degrees about the center and
// squeezes it into a taller-than-wide diamond.
func diamondCoords(particles []*Particle, c Point2D) []Point2D {
	out := squareCoords(particles, c)
	turn := cp.ForAngle(math.Pi / 4)
	for i := range out {
		rel := c.Vec().Sub(out[i].Vec())
		rot := rel.Rotate(turn)
		rot.X *= diamondStretchX
		rot.Y *= diamondStretchY

		diff := rot.Sub(rel)
		out[i].X -= diff.X
		out[i].Y -= diff.Y
	}
	return out
}

// spiralCoords walks an Archimedean spiral with a fixed chord of three away
// steps. The first point sits on the center.
func spiralCoords(particles []*Particle, c Point2D) []Point2D {
	n := len(particles)
	awayStep := max(int(particles[0].Width)/2, 1)
	chord := awayStep * 3
	theta := float64(chord / awayStep)

	out := make([]Point2D, 0, n)
	out = append(out, Pt(c.X, c.Y))
	for i := 1; i < n; i++ {
		away := float64(awayStep) * theta
		out = append(out, awayAround(c, theta, away))
		theta += float64(chord) / away
	}
	return out
}

// looseSpiralCoords keeps successive points one chord apart by solving for
// the angle step at the current radius.
func looseSpiralCoords(particles []*Particle, c Point2D) []Point2D {
	n := len(particles)
	awayStep := max(int(particles[0].Width)*2, 1)
	chord := awayStep / 2
	theta := float64(chord / awayStep)

	step := float64(awayStep)
	out := make([]Point2D, 0, n)
	out = append(out, Pt(c.X, c.Y))
	for i := 1; i < n; i++ {
		away := step * theta
		out = append(out, awayAround(c, theta, away))

		delta := (-2*away + math.Sqrt(4*away*away+8*step*float64(chord))) / (2 * step)
		theta += delta
	}
	return out
}

func awayAround(c Point2D, theta, away float64) Point2D {
	v := c.Vec().Add(cp.ForAngle(theta + spiralRotation).Mult(away))
	return Pt(v.X, v.Y)
}

func sunflowerCoords(particles []*Particle, c Point2D, baseAngle float64) []Point2D {
	n := len(particles)
	multiplier := sunflowerSpread * particles[0].Width

	out := make([]Point2D, 0, n)
	for i := 0; i < n; i++ {
		r := math.Sqrt(float64(i)) * multiplier
		v := c.Vec().Add(cp.ForAngle(baseAngle * float64(i)).Mult(r))
		out = append(out, Pt(v.X, v.Y))
	}
	return out
}
