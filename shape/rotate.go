package shape

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Angle returns the direction from (xc, yc) to (x, y). Unlike math.Atan2 the
// result lies in (-pi/2, 3pi/2]: points left of the origin get pi added.
func Angle(xc, yc, x, y float64) float64 {
	dy := y - yc
	dx := x - xc
	if dx == 0 {
		if dy >= 0 {
			return math.Pi / 2
		}
		return -math.Pi / 2
	}

	angle := math.Atan(dy / dx)
	if dx < 0 {
		angle += math.Pi
	}
	return angle
}

// RotateAbout turns every particle rigidly about center by angle radians.
func RotateAbout(particles []*Particle, center Point2D, angle float64) {
	turn := cp.ForAngle(angle)
	c := center.Vec()
	for _, p := range particles {
		if p == nil {
			continue
		}
		rel := c.Sub(p.Pos())
		rot := rel.Rotate(turn)

		diff := rot.Sub(rel)
		p.X -= diff.X
		p.Y -= diff.Y
	}
}

// dampRotation scales the raw angle delta into a per-sample increment. Large
// increments are shrunk tenfold and reversed.
func dampRotation(delta, divisor, clamp float64) float64 {
	angle := delta / divisor
	if math.Abs(angle) >= clamp {
		angle /= -10
	}
	return angle
}
