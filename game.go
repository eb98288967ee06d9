package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shapeshift/physics"
	"github.com/milk9111/shapeshift/prefabs"
	"github.com/milk9111/shapeshift/sequence"
	"github.com/milk9111/shapeshift/shape"
	"github.com/milk9111/shapeshift/swarm"
)

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x0b, B: 0x12, A: 0xff}
	centerColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}
)

type Game struct {
	frames int
	debug  bool

	spec      *prefabs.LayoutSpec
	engine    *shape.Engine
	particles []*shape.Particle
	world     *physics.World
	colors    []color.RGBA

	input   *Input
	toolbar *Toolbar
	seq     *sequence.Runtime
	watcher *prefabs.Watcher

	arrived      bool
	arrivedTotal int
	held         int
}

type GameOptions struct {
	Shape  string
	Script string
	Watch  bool
	Debug  bool
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadLayoutSpec()
	if err != nil {
		return nil, err
	}
	if opts.Script != "" {
		spec.Sequence.Script = opts.Script
	}
	if opts.Shape != "" {
		spec.InitialShape = opts.Shape
	}

	g := &Game{
		debug: opts.Debug,
		input: NewInput(),
	}
	g.toolbar = NewToolbar(shape.Names(), g.selectShape, g.toggleRotate)
	g.applySpec(spec)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// applySpec rebuilds the particles, engine and script from spec and lays out
// the current shape again, or the initial one on first load.
func (g *Game) applySpec(spec *prefabs.LayoutSpec) {
	current := spec.InitialShape
	if s := g.engine.Shape(); s != nil {
		current = s.Name()
	}

	g.spec = spec
	g.colors = spec.Colors()

	cx, cy := spec.CenterPoint()
	g.engine = shape.NewEngine(shape.Pt(cx, cy),
		shape.WithFrameDivisor(spec.Motion.FrameDivisor),
		shape.WithArrivalDivisor(spec.Motion.ArrivalDivisor),
		shape.WithRotationDivisor(spec.Rotation.Divisor),
		shape.WithRotationClamp(spec.Rotation.Clamp),
	)

	g.particles = swarm.Spawn(swarm.Config{
		Count:  spec.Particles.Count,
		Width:  spec.Particles.Width,
		Height: spec.Particles.Height,
		AreaW:  float64(spec.Canvas.Width),
		AreaH:  float64(spec.Canvas.Height),
		Seed:   spec.Particles.Seed,
		Noise:  spec.Particles.Noise,
	})
	if g.world == nil {
		g.world = physics.NewWorld(g.particles)
	} else {
		g.world.Track(g.particles)
	}

	g.loadScript()
	g.reshape(current)
}

func (g *Game) loadScript() {
	g.seq = nil
	if g.spec.Sequence.Script == "" {
		return
	}
	rt, err := sequence.Load(g.spec.Sequence.Script)
	if err != nil {
		log.Printf("sequence disabled: %v", err)
		return
	}
	g.seq = rt
}

func (g *Game) reshape(name string) {
	s, err := shape.Parse(name, g.baseAngle())
	if err != nil {
		log.Printf("reshape: %v", err)
		return
	}

	paired := g.engine.Reshape(s, g.particles)
	g.arrived = false
	g.held = 0
	if g.debug {
		log.Printf("shape %s: %d targets, %d paired", s.Name(), len(g.engine.Coordinates()), paired)
	}
}

func (g *Game) baseAngle() float64 {
	if g.spec != nil && g.spec.Sunflower.BaseAngle != 0 {
		return g.spec.Sunflower.BaseAngle
	}
	return shape.GoldenAngle
}

func (g *Game) selectShape(name string) {
	g.reshape(name)
}

func (g *Game) toggleRotate() {
	g.engine.SetDraggable(!g.engine.Draggable())
}

// advance asks the script for the next shape once the current one has held
// for the configured number of frames.
func (g *Game) advance() {
	if g.seq == nil {
		return
	}
	cur := ""
	if s := g.engine.Shape(); s != nil {
		cur = s.Name()
	}
	next, err := g.seq.Next(sequence.Stats{
		Current:      cur,
		Shapes:       shape.Names(),
		Count:        len(g.particles),
		ArrivedTotal: g.arrivedTotal,
	})
	if err != nil {
		log.Printf("%v", err)
		g.seq = nil
		return
	}
	g.reshape(next)
}

func (g *Game) pollChanges() {
	for {
		ch, ok := g.watcher.Poll()
		if !ok {
			break
		}
		switch ch.Kind {
		case prefabs.ChangeLayout:
			spec, err := prefabs.LoadLayoutSpec()
			if err != nil {
				log.Printf("reload %s: %v", ch.Path, err)
				continue
			}
			g.applySpec(spec)
			log.Printf("reloaded %s", ch.Path)
		case prefabs.ChangeScript:
			g.loadScript()
			log.Printf("reloaded %s", ch.Path)
		}
	}
	for {
		err := g.watcher.PollError()
		if err == nil {
			break
		}
		log.Printf("watch: %v", err)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollChanges()
	g.input.Update()
	if g.input.Quit {
		_ = g.watcher.Close()
		return ebiten.Termination
	}

	if g.input.ShapeKey > 0 {
		names := shape.Names()
		g.selectShape(names[g.input.ShapeKey-1])
	}
	if g.input.ToggleRotate {
		g.toggleRotate()
	}
	if g.input.NextShape {
		g.advance()
	}

	g.toolbar.Update()
	g.updateRotation()

	if !g.arrived {
		if g.engine.Step(g.particles) {
			g.arrived = true
			g.arrivedTotal++
			if g.debug {
				log.Printf("arrived after %d frames", g.frames)
			}
		}
	}
	g.world.Step(g.spec.Motion.IntegrateDT)

	if g.arrived && g.spec.Sequence.Auto && !g.engine.Draggable() {
		g.held++
		if g.held >= g.spec.Sequence.HoldFrames {
			g.advance()
		}
	}

	return nil
}

func (g *Game) updateRotation() {
	in := g.input
	if !g.engine.Draggable() {
		return
	}
	switch {
	case in.MousePressed && !g.toolbar.Contains(in.MouseX, in.MouseY):
		g.engine.BeginRotation(in.MouseX, in.MouseY)
	case in.MouseHeld && in.Moved && g.engine.Rotating():
		g.engine.Rotate(in.MouseX, in.MouseY, g.particles)
	}
	if in.MouseReleased {
		g.engine.EndRotation()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i, p := range g.particles {
		c := g.colors[i%len(g.colors)]
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), c, false)
	}

	if g.engine.Draggable() {
		center := g.engine.Center()
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), 6, 1, centerColor, true)
	}

	g.toolbar.Draw(screen)

	cur := "-"
	if s := g.engine.Shape(); s != nil {
		cur = s.Name()
	}
	status := fmt.Sprintf("Shape: %s  Arrived: %t  Rotate: %t", cur, g.arrived, g.engine.Draggable())
	if g.debug {
		status += fmt.Sprintf("  Angle: %.3f  Frames: %d  FPS: %.2f", g.engine.CurrentAngle(), g.frames, ebiten.ActualFPS())
	}
	ebitenutil.DebugPrintAt(screen, status, 8, g.spec.Canvas.Height-20)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Canvas.Width), float64(g.spec.Canvas.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
