package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/shapeshift/common"
	"github.com/milk9111/shapeshift/shape"
	"github.com/milk9111/shapeshift/swarm"
	"gopkg.in/yaml.v3"
)

type pointOut struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// Particle is the index of the paired particle when -assign is set.
	Particle *int `yaml:"particle,omitempty"`
}

type layoutOut struct {
	Shape     string     `yaml:"shape"`
	Center    pointOut   `yaml:"center"`
	Particles int        `yaml:"particles"`
	Paired    int        `yaml:"paired,omitempty"`
	Points    []pointOut `yaml:"points"`
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("shapegen", flag.ContinueOnError)
	name := fs.String("shape", "sunflower", "shape to generate")
	n := fs.Int("n", 64, "number of particles")
	size := fs.Float64("size", 10, "particle width and height")
	cx := fs.Float64("cx", common.BaseWidth/2, "center x")
	cy := fs.Float64("cy", common.BaseHeight/2, "center y")
	angle := fs.Float64("angle", shape.GoldenAngle, "sunflower base angle in radians")
	assign := fs.Bool("assign", false, "scatter particles and pair them with the generated points")
	seed := fs.Int64("seed", 1, "scatter seed used with -assign")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("shapegen: -n must not be negative")
	}

	s, err := shape.Parse(*name, *angle)
	if err != nil {
		return err
	}

	var particles []*shape.Particle
	if *assign {
		particles = swarm.Spawn(swarm.Config{
			Count:  *n,
			Width:  *size,
			Height: *size,
			AreaW:  *cx * 2,
			AreaH:  *cy * 2,
			Seed:   *seed,
		})
	} else {
		particles = make([]*shape.Particle, *n)
		for i := range particles {
			particles[i] = &shape.Particle{Width: *size, Height: *size}
		}
	}

	engine := shape.NewEngine(shape.Pt(*cx, *cy))
	out := layoutOut{
		Shape:     s.Name(),
		Center:    pointOut{X: *cx, Y: *cy},
		Particles: *n,
	}
	if *assign {
		out.Paired = engine.Reshape(s, particles)
	} else {
		engine.Generate(s, particles)
	}

	for _, pt := range engine.Coordinates() {
		po := pointOut{X: pt.X, Y: pt.Y}
		if idx, ok := pt.Particle(); ok {
			po.Particle = &idx
		}
		out.Points = append(out.Points, po)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("shapegen: encode: %w", err)
	}
	return enc.Close()
}
