package shape

import (
	"math"
	"testing"
)

const eps = 1e-9

func uniformParticles(n int, size float64) []*Particle {
	ps := make([]*Particle, n)
	for i := range ps {
		ps[i] = &Particle{X: float64(i * 3), Y: float64(i * 5), Width: size, Height: size}
	}
	return ps
}

func TestGenerateCountBounds(t *testing.T) {
	center := Pt(400, 300)
	shapes := []Shape{Circle{}, Square{}, Diamond{}, Spiral{}, LooseSpiral{}, Sunflower{BaseAngle: GoldenAngle}}

	for _, s := range shapes {
		for _, n := range []int{1, 2, 3, 4, 5, 8, 13, 40, 101} {
			got := Generate(s, uniformParticles(n, 10), center)
			if len(got) > n {
				t.Fatalf("%s n=%d: expected at most %d coordinates, got %d", s.Name(), n, n, len(got))
			}
		}
	}
}

func TestGenerateEmptyParticles(t *testing.T) {
	for _, s := range []Shape{Circle{}, Square{}, Diamond{}, Spiral{}, LooseSpiral{}, Sunflower{}} {
		if got := Generate(s, nil, Pt(100, 100)); len(got) != 0 {
			t.Fatalf("%s: expected no coordinates for empty input, got %d", s.Name(), len(got))
		}
	}
	if got := Generate(nil, uniformParticles(4, 10), Pt(100, 100)); got != nil {
		t.Fatalf("nil shape: expected nil, got %v", got)
	}
}

func TestCircleCoords(t *testing.T) {
	cases := []struct {
		name string
		n    int
		size float64
	}{
		{"four", 4, 10},
		{"twelve", 12, 8},
		{"hundred", 100, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			center := Pt(400, 300)
			got := Generate(Circle{}, uniformParticles(c.n, c.size), center)
			if len(got) != c.n {
				t.Fatalf("expected %d coordinates, got %d", c.n, len(got))
			}

			radius := c.size / (2 * math.Sin(math.Pi/float64(c.n)))
			// targets are offset by half a sprite so the sprite centers on the ring
			cx, cy := center.X-c.size/2, center.Y-c.size/2
			step := 2 * math.Pi / float64(c.n)
			for i, p := range got {
				d := math.Hypot(p.X-cx, p.Y-cy)
				if math.Abs(d-radius) > 1e-6 {
					t.Fatalf("point %d: expected radius %f, got %f", i, radius, d)
				}
				// angle measured clockwise from up
				a := math.Atan2(p.X-cx, -(p.Y - cy))
				want := math.Remainder(float64(i)*step, 2*math.Pi)
				if math.Abs(math.Remainder(a-want, 2*math.Pi)) > 1e-6 {
					t.Fatalf("point %d: expected angle %f, got %f", i, want, a)
				}
			}
		})
	}
}

func TestCircleOverflowGuard(t *testing.T) {
	// radius for 100 particles of width 10 is ~159
	if got := Generate(Circle{}, uniformParticles(100, 10), Pt(150, 500)); len(got) != 0 {
		t.Fatalf("expected guard to drop all coordinates, got %d", len(got))
	}
	if got := Generate(Circle{}, uniformParticles(1, 10), Pt(150, 500)); len(got) != 0 {
		t.Fatalf("expected a single particle to overflow, got %d", len(got))
	}
}

func TestSquareCoords(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{3, 1},
		{4, 4},
		{7, 4},
		{8, 8},
		{9, 8},
		{12, 12},
		{40, 40},
		{42, 40},
	}

	for _, c := range cases {
		got := Generate(Square{}, uniformParticles(c.n, 10), Pt(200, 200))
		if len(got) != c.want {
			t.Fatalf("n=%d: expected %d coordinates, got %d", c.n, c.want, len(got))
		}
	}
}

func TestSquareIsOutline(t *testing.T) {
	w := 10.0
	center := Pt(200, 200)
	got := Generate(Square{}, uniformParticles(16, w), center)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range got {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if maxX-minX != 4*w || maxY-minY != 4*w {
		t.Fatalf("expected a %v-wide outline, got %vx%v", 4*w, maxX-minX, maxY-minY)
	}

	seen := map[[2]float64]bool{}
	for _, p := range got {
		onEdge := p.X == minX || p.X == maxX || p.Y == minY || p.Y == maxY
		if !onEdge {
			t.Fatalf("point (%v,%v) is inside the square", p.X, p.Y)
		}
		key := [2]float64{p.X, p.Y}
		if seen[key] {
			t.Fatalf("duplicate point (%v,%v)", p.X, p.Y)
		}
		seen[key] = true
	}
}

func TestDiamondFromSquare(t *testing.T) {
	center := Pt(300, 300)
	ps := uniformParticles(20, 10)
	sq := Generate(Square{}, ps, center)
	dm := Generate(Diamond{}, ps, center)
	if len(sq) != len(dm) {
		t.Fatalf("expected %d diamond points, got %d", len(sq), len(dm))
	}

	s2 := math.Sqrt2 / 2
	for i := range sq {
		rx, ry := center.X-sq[i].X, center.Y-sq[i].Y
		wantX := center.X - (rx*s2-ry*s2)*diamondStretchX
		wantY := center.Y - (rx*s2+ry*s2)*diamondStretchY
		if math.Abs(dm[i].X-wantX) > 1e-9 || math.Abs(dm[i].Y-wantY) > 1e-9 {
			t.Fatalf("point %d: expected (%f,%f), got (%f,%f)", i, wantX, wantY, dm[i].X, dm[i].Y)
		}
	}
}

func TestSpiralsStartAtCenter(t *testing.T) {
	center := Pt(250, 180)
	for _, s := range []Shape{Spiral{}, LooseSpiral{}} {
		t.Run(s.Name(), func(t *testing.T) {
			got := Generate(s, uniformParticles(60, 10), center)
			if len(got) != 60 {
				t.Fatalf("expected 60 coordinates, got %d", len(got))
			}
			if got[0].X != center.X || got[0].Y != center.Y {
				t.Fatalf("expected first point at center, got (%f,%f)", got[0].X, got[0].Y)
			}
		})
	}
}

func TestSpiralChord(t *testing.T) {
	center := Pt(250, 250)
	got := Generate(Spiral{}, uniformParticles(80, 10), center)

	// with awayStep 5 the chord is 15; point spacing approaches it as the
	// radius grows
	prevR := 0.0
	for i := 1; i < len(got); i++ {
		r := math.Hypot(got[i].X-center.X, got[i].Y-center.Y)
		if r < prevR {
			t.Fatalf("point %d: radius shrank from %f to %f", i, prevR, r)
		}
		prevR = r
	}
	last := len(got) - 1
	d := math.Hypot(got[last].X-got[last-1].X, got[last].Y-got[last-1].Y)
	if math.Abs(d-15) > 1 {
		t.Fatalf("expected spacing near 15, got %f", d)
	}
}

func TestLooseSpiralConstantChord(t *testing.T) {
	center := Pt(250, 250)
	got := Generate(LooseSpiral{}, uniformParticles(50, 10), center)

	// awayStep 20, chord 10: the angle step is solved at the inner radius,
	// so spacing starts above the chord and settles toward it
	prev := math.Inf(1)
	for i := 4; i < len(got); i++ {
		d := math.Hypot(got[i].X-got[i-1].X, got[i].Y-got[i-1].Y)
		if d < 10-eps || d > 12 {
			t.Fatalf("point %d: expected spacing between 10 and 12, got %f", i, d)
		}
		if d > prev+eps {
			t.Fatalf("point %d: spacing grew from %f to %f", i, prev, d)
		}
		prev = d
	}
}

func TestSunflowerCoords(t *testing.T) {
	center := Pt(320, 240)
	angles := []float64{GoldenAngle, 1, 0.5}
	for _, a := range angles {
		got := Generate(Sunflower{BaseAngle: a}, uniformParticles(200, 5), center)
		if len(got) != 200 {
			t.Fatalf("expected 200 coordinates, got %d", len(got))
		}
		if got[0].X != center.X || got[0].Y != center.Y {
			t.Fatalf("expected point 0 at center, got (%f,%f)", got[0].X, got[0].Y)
		}
		prev := 0.0
		for i, p := range got {
			r := math.Hypot(p.X-center.X, p.Y-center.Y)
			if r+eps < prev {
				t.Fatalf("angle %f point %d: radius decreased from %f to %f", a, i, prev, r)
			}
			want := math.Sqrt(float64(i)) * 6
			if math.Abs(r-want) > 1e-9 {
				t.Fatalf("angle %f point %d: expected radius %f, got %f", a, i, want, r)
			}
			prev = r
		}
	}
}

func TestGeneratorsLeaveParticlesAlone(t *testing.T) {
	ps := uniformParticles(16, 10)
	before := make([]Particle, len(ps))
	for i, p := range ps {
		before[i] = *p
	}
	for _, s := range []Shape{Circle{}, Square{}, Diamond{}, Spiral{}, LooseSpiral{}, Sunflower{BaseAngle: GoldenAngle}} {
		Generate(s, ps, Pt(200, 200))
	}
	for i, p := range ps {
		if *p != before[i] {
			t.Fatalf("particle %d changed: %+v -> %+v", i, before[i], *p)
		}
	}
}
