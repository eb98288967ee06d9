package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shapeshift/shape"
)

// World owns a Chipmunk space with one kinematic body per particle. The
// particles stay the source of truth: each Step pushes their position and
// velocity into the bodies, advances the space and reads positions back.
type World struct {
	space     *cp.Space
	bodies    []*cp.Body
	particles []*shape.Particle
}

// NewWorld creates a gravity-free space for particles.
func NewWorld(particles []*shape.Particle) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	w := &World{space: space}
	w.Track(particles)
	return w
}

// Track replaces the particle set the world integrates.
func (w *World) Track(particles []*shape.Particle) {
	if w == nil || w.space == nil {
		return
	}
	for _, b := range w.bodies {
		w.space.RemoveBody(b)
	}
	w.bodies = w.bodies[:0]
	w.particles = particles

	for _, p := range particles {
		body := cp.NewKinematicBody()
		if p != nil {
			body.SetPosition(p.Pos())
		}
		w.space.AddBody(body)
		w.bodies = append(w.bodies, body)
	}
}

// Len returns the number of tracked particles.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Step integrates particle velocity over dt ticks.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}

	for i, p := range w.particles {
		if p == nil {
			continue
		}
		w.bodies[i].SetPosition(p.Pos())
		w.bodies[i].SetVelocity(p.VX, p.VY)
	}

	w.space.Step(dt)

	for i, p := range w.particles {
		if p == nil {
			continue
		}
		pos := w.bodies[i].Position()
		p.X = pos.X
		p.Y = pos.Y
	}
}
