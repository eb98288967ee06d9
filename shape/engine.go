package shape

// Engine builds shapes around a fixed center and steers particles onto them.
// It is not safe for concurrent use; call it from the frame loop.
type Engine struct {
	shape  Shape
	center Point2D
	coords []Point2D
	opts   Options

	draggable    bool
	rotating     bool
	currentAngle float64
	startAngle   float64
	anchorX      float64
	anchorY      float64
}

// NewEngine creates an engine with an empty coordinate list.
func NewEngine(center Point2D, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Engine{
		center: Pt(center.X, center.Y),
		opts:   o,
	}
}

// Center returns the point every shape is built around.
func (e *Engine) Center() Point2D {
	if e == nil {
		return Point2D{}
	}
	return e.center
}

// Shape returns the last shape generated, or nil.
func (e *Engine) Shape() Shape {
	if e == nil {
		return nil
	}
	return e.shape
}

func (e *Engine) Options() Options {
	if e == nil {
		return DefaultOptions()
	}
	return e.opts
}

// Coordinates returns a copy of the current targets.
func (e *Engine) Coordinates() []Point2D {
	if e == nil {
		return nil
	}
	out := make([]Point2D, len(e.coords))
	copy(out, e.coords)
	return out
}

// Reinitialize drops all coordinates and their pairings.
func (e *Engine) Reinitialize() {
	if e == nil {
		return
	}
	e.coords = nil
}

// Generate appends the targets for s. Call Reinitialize first unless the
// previous shape should be kept.
func (e *Engine) Generate(s Shape, particles []*Particle) {
	if e == nil {
		return
	}
	e.shape = s
	e.coords = append(e.coords, Generate(s, particles, e.center)...)
}

// Assign pairs particles with the current coordinates.
func (e *Engine) Assign(particles []*Particle) int {
	if e == nil {
		return 0
	}
	return Assign(particles, e.coords)
}

// Reshape replaces the current layout with s and pairs the particles with it.
// It returns the number of pairs made.
func (e *Engine) Reshape(s Shape, particles []*Particle) int {
	if e == nil {
		return 0
	}
	e.Reinitialize()
	e.Generate(s, particles)
	return e.Assign(particles)
}

// SetSpeed updates particle velocities toward their targets.
func (e *Engine) SetSpeed(particles []*Particle) {
	if e == nil {
		return
	}
	SetSpeed(particles, e.coords, e.opts.FrameDivisor)
}

// CheckArrival stops arrived axes and reports whether every particle is home.
func (e *Engine) CheckArrival(particles []*Particle) bool {
	if e == nil {
		return true
	}
	return CheckArrival(particles, e.coords, e.opts.ArrivalDivisor)
}

// Step runs one motion tick and returns the arrival signal.
func (e *Engine) Step(particles []*Particle) bool {
	e.SetSpeed(particles)
	return e.CheckArrival(particles)
}

func (e *Engine) SetDraggable(v bool) {
	if e == nil {
		return
	}
	e.draggable = v
	if !v {
		e.rotating = false
	}
}

func (e *Engine) Draggable() bool {
	return e != nil && e.draggable
}

// Rotating reports whether a rotation gesture is in progress.
func (e *Engine) Rotating() bool {
	return e != nil && e.rotating
}

// SetAnchor records the mouse position a rotation gesture starts from.
func (e *Engine) SetAnchor(x, y float64) {
	if e == nil {
		return
	}
	e.anchorX = x
	e.anchorY = y
}

func (e *Engine) Anchor() (float64, float64) {
	if e == nil {
		return 0, 0
	}
	return e.anchorX, e.anchorY
}

// BeginRotation starts a gesture at (x, y).
func (e *Engine) BeginRotation(x, y float64) {
	if e == nil {
		return
	}
	e.SetAnchor(x, y)
	e.startAngle = Angle(e.center.X, e.center.Y, x, y)
	e.rotating = true
}

// Rotate turns the particles about the center for the mouse sample (x, y)
// and returns the angle applied. It does nothing unless the engine is
// draggable.
func (e *Engine) Rotate(x, y float64, particles []*Particle) float64 {
	if e == nil || !e.draggable {
		return 0
	}
	e.currentAngle = Angle(e.center.X, e.center.Y, x, y)
	angle := dampRotation(e.currentAngle-e.startAngle, e.opts.RotationDiv, e.opts.RotationClamp)
	RotateAbout(particles, e.center, angle)
	return angle
}

// EndRotation finishes the gesture. The last angles stay readable.
func (e *Engine) EndRotation() {
	if e == nil {
		return
	}
	e.rotating = false
}

func (e *Engine) CurrentAngle() float64 {
	if e == nil {
		return 0
	}
	return e.currentAngle
}

func (e *Engine) StartAngle() float64 {
	if e == nil {
		return 0
	}
	return e.startAngle
}
