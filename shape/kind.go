package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// GoldenAngle is the sunflower base angle that gives the densest packing.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

var ErrUnknownShape = errors.New("unknown shape")

// Shape is one of the layouts the engine can build. The set is closed: only
// the types in this package implement it.
type Shape interface {
	Name() string
	shape()
}

type (
	Circle      struct{}
	Square      struct{}
	Diamond     struct{}
	Spiral      struct{}
	LooseSpiral struct{}

	// Sunflower places point i at angle BaseAngle*i. GoldenAngle is the usual
	// choice; other angles change the density of the arms.
	Sunflower struct {
		BaseAngle float64
	}
)

func (Circle) Name() string      { return "circle" }
func (Square) Name() string      { return "square" }
func (Diamond) Name() string     { return "diamond" }
func (Spiral) Name() string      { return "spiral" }
func (LooseSpiral) Name() string { return "loose_spiral" }
func (Sunflower) Name() string   { return "sunflower" }

func (Circle) shape()      {}
func (Square) shape()      {}
func (Diamond) shape()     {}
func (Spiral) shape()      {}
func (LooseSpiral) shape() {}
func (Sunflower) shape()   {}

// Names lists the shape names in menu order.
func Names() []string {
	return []string{
		Circle{}.Name(),
		Square{}.Name(),
		Diamond{}.Name(),
		Spiral{}.Name(),
		LooseSpiral{}.Name(),
		Sunflower{}.Name(),
	}
}

// Parse resolves a shape by name. baseAngle is only used by the sunflower.
func Parse(name string, baseAngle float64) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch key {
	case "circle":
		return Circle{}, nil
	case "square":
		return Square{}, nil
	case "diamond":
		return Diamond{}, nil
	case "spiral":
		return Spiral{}, nil
	case "loose_spiral", "loosespiral":
		return LooseSpiral{}, nil
	case "sunflower":
		return Sunflower{BaseAngle: baseAngle}, nil
	}
	return nil, fmt.Errorf("shape: %w: %q", ErrUnknownShape, name)
}
