package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var shapeKeys = []ebiten.Key{
	ebiten.Key1,
	ebiten.Key2,
	ebiten.Key3,
	ebiten.Key4,
	ebiten.Key5,
	ebiten.Key6,
}

// Input is a per-frame snapshot of the mouse and the demo's key bindings.
type Input struct {
	MouseX float64
	MouseY float64

	MousePressed  bool
	MouseHeld     bool
	MouseReleased bool
	Moved         bool

	// ShapeKey is the 1-based index of the shape key pressed this frame, or 0.
	ShapeKey int

	ToggleRotate bool
	NextShape    bool
	Quit         bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	i.Moved = x != i.MouseX || y != i.MouseY
	i.MouseX, i.MouseY = x, y

	i.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.MouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.MouseReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	i.ShapeKey = 0
	for idx, k := range shapeKeys {
		if inpututil.IsKeyJustPressed(k) {
			i.ShapeKey = idx + 1
			break
		}
	}

	i.ToggleRotate = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.NextShape = inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
