package swarm

import (
	"github.com/aquilax/go-perlin"
	"github.com/milk9111/shapeshift/common"
	"github.com/milk9111/shapeshift/shape"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3

	// the two axes sample the field along rows far apart so x and y do not
	// correlate
	rowX = 0.31
	rowY = 71.7

	defaultNoise = 0.015
)

// Config describes a batch of uniform particles scattered over an area.
type Config struct {
	Count  int
	Width  float64
	Height float64
	AreaW  float64
	AreaH  float64
	Seed   int64
	// Noise is the step through the perlin field between particles. Small
	// values keep neighbours close, large values look random.
	Noise float64
}

// Spawn creates cfg.Count particles at rest, scattered over the area by a
// seeded perlin field. The same config always yields the same positions.
func Spawn(cfg Config) []*shape.Particle {
	if cfg.Count <= 0 {
		return nil
	}
	step := cfg.Noise
	if step <= 0 {
		step = defaultNoise
	}

	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, cfg.Seed)
	maxX := max(cfg.AreaW-cfg.Width, 0)
	maxY := max(cfg.AreaH-cfg.Height, 0)

	out := make([]*shape.Particle, cfg.Count)
	for i := range out {
		t := float64(i+1) * step * 100
		out[i] = &shape.Particle{
			X:      common.Lerp(0, maxX, unit(field.Noise2D(t, rowX))),
			Y:      common.Lerp(0, maxY, unit(field.Noise2D(rowY, t))),
			Width:  cfg.Width,
			Height: cfg.Height,
		}
	}
	return out
}

// unit maps perlin output, roughly [-1, 1], onto [0, 1].
func unit(v float64) float64 {
	return common.Clamp01(v*0.5 + 0.5)
}
