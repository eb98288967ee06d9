package shape

import "github.com/jakecoffman/cp"

// Particle is a mutable sprite the engine steers toward its target.
// The engine reads and writes position and velocity; Width and Height are
// never modified.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64
}

// Pos returns the particle position as a vector.
func (p *Particle) Pos() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: p.X, Y: p.Y}
}

// Point2D is a target coordinate, optionally paired with the particle moving
// toward it. The pairing is an index into the particle slice the engine was
// given; the point never owns the particle.
type Point2D struct {
	X, Y float64

	// particle is index+1 so the zero value means unassigned.
	particle int
}

// Pt builds an unassigned point.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Particle returns the index of the assigned particle.
func (p Point2D) Particle() (int, bool) {
	if p.particle <= 0 {
		return 0, false
	}
	return p.particle - 1, true
}

// Assign pairs the point with the particle at index i.
func (p *Point2D) Assign(i int) {
	if p == nil || i < 0 {
		return
	}
	p.particle = i + 1
}

// Release drops the pairing.
func (p *Point2D) Release() {
	if p == nil {
		return
	}
	p.particle = 0
}

// Vec returns the point as a vector.
func (p Point2D) Vec() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}
