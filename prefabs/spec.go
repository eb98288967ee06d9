package prefabs

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/shapeshift/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LayoutFile is the default layout spec name.
const LayoutFile = "layout.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ParticleSpec struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Seed   int64   `yaml:"seed"`
	// Noise scales the perlin field used to scatter spawn positions.
	Noise float64 `yaml:"noise"`
}

type MotionSpec struct {
	FrameDivisor   float64 `yaml:"frame_divisor"`
	ArrivalDivisor float64 `yaml:"arrival_divisor"`
	IntegrateDT    float64 `yaml:"integrate_dt"`
}

type RotationSpec struct {
	Divisor float64 `yaml:"divisor"`
	Clamp   float64 `yaml:"clamp"`
}

type SunflowerSpec struct {
	BaseAngle float64 `yaml:"base_angle"`
}

type SequenceSpec struct {
	Script string `yaml:"script"`
	Auto   bool   `yaml:"auto"`
	// HoldFrames is how long an arrived shape stays before the script picks
	// the next one.
	HoldFrames int `yaml:"hold_frames"`
}

type LayoutSpec struct {
	Name         string        `yaml:"name"`
	Canvas       CanvasSpec    `yaml:"canvas"`
	Center       *PointSpec    `yaml:"center"`
	Particles    ParticleSpec  `yaml:"particles"`
	Motion       MotionSpec    `yaml:"motion"`
	Rotation     RotationSpec  `yaml:"rotation"`
	Sunflower    SunflowerSpec `yaml:"sunflower"`
	InitialShape string        `yaml:"initial_shape"`
	Sequence     SequenceSpec  `yaml:"sequence"`
	Palette      []string      `yaml:"palette"`
}

func LoadLayoutSpec() (*LayoutSpec, error) {
	spec, err := LoadSpec[LayoutSpec](LayoutFile)
	if err != nil {
		return nil, err
	}
	if spec.Canvas.Width <= 0 {
		spec.Canvas.Width = common.BaseWidth
	}
	if spec.Canvas.Height <= 0 {
		spec.Canvas.Height = common.BaseHeight
	}
	if spec.Motion.IntegrateDT <= 0 {
		spec.Motion.IntegrateDT = 1
	}
	return &spec, nil
}

// CenterPoint returns the configured center, or the middle of the canvas.
func (s *LayoutSpec) CenterPoint() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	if s.Center != nil {
		return s.Center.X, s.Center.Y
	}
	return float64(s.Canvas.Width) / 2, float64(s.Canvas.Height) / 2
}

// Colors resolves the palette names against x/image colornames. Unknown names
// are skipped; an empty result falls back to white.
func (s *LayoutSpec) Colors() []color.RGBA {
	var out []color.RGBA
	if s != nil {
		for _, name := range s.Palette {
			if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
				out = append(out, c)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, colornames.White)
	}
	return out
}
