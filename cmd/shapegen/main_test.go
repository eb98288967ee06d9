package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/milk9111/shapeshift/shape"
	"gopkg.in/yaml.v3"
)

func runYAML(t *testing.T, args ...string) layoutOut {
	t.Helper()
	var buf bytes.Buffer
	if err := run(args, &buf); err != nil {
		t.Fatalf("run(%v): %v", args, err)
	}
	var out layoutOut
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, buf.String())
	}
	return out
}

func TestRunGeneratesPoints(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		shape  string
		points int
	}{
		{name: "circle", args: []string{"-shape", "circle", "-n", "8"}, shape: "circle", points: 8},
		{name: "square under-fills", args: []string{"-shape", "square", "-n", "10"}, shape: "square", points: 8},
		{name: "loose spiral alias", args: []string{"-shape", "loose-spiral", "-n", "12"}, shape: "loose_spiral", points: 12},
		{name: "sunflower default", args: []string{"-n", "30"}, shape: "sunflower", points: 30},
		{name: "empty", args: []string{"-shape", "spiral", "-n", "0"}, shape: "spiral", points: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runYAML(t, tt.args...)
			if out.Shape != tt.shape {
				t.Fatalf("expected shape %q, got %q", tt.shape, out.Shape)
			}
			if len(out.Points) != tt.points {
				t.Fatalf("expected %d points, got %d", tt.points, len(out.Points))
			}
			for i, p := range out.Points {
				if p.Particle != nil {
					t.Fatalf("point %d unexpectedly paired without -assign", i)
				}
			}
		})
	}
}

func TestRunAssignPairsEveryPoint(t *testing.T) {
	out := runYAML(t, "-shape", "diamond", "-n", "12", "-assign", "-seed", "7")
	if out.Paired != 12 {
		t.Fatalf("expected 12 pairs, got %d", out.Paired)
	}
	seen := make(map[int]bool)
	for i, p := range out.Points {
		if p.Particle == nil {
			t.Fatalf("point %d is unpaired", i)
		}
		if seen[*p.Particle] {
			t.Fatalf("particle %d paired twice", *p.Particle)
		}
		seen[*p.Particle] = true
	}
}

func TestRunCenter(t *testing.T) {
	out := runYAML(t, "-shape", "spiral", "-n", "5", "-cx", "100", "-cy", "50")
	if out.Center.X != 100 || out.Center.Y != 50 {
		t.Fatalf("unexpected center %+v", out.Center)
	}
	if out.Points[0].X != 100 || out.Points[0].Y != 50 {
		t.Fatalf("spiral should start on the center, got %+v", out.Points[0])
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-shape", "hexagon"}, &buf)
	if !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("expected ErrUnknownShape, got %v", err)
	}
	if err := run([]string{"-n", "-3"}, &buf); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if err := run([]string{"-bogus"}, &buf); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
