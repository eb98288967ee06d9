package main

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Toolbar is the strip of shape buttons along the top of the window.
type Toolbar struct {
	ui    *ebitenui.UI
	panel *widget.Container
}

// NewToolbar builds one button per shape name plus a Rotate button. Handlers
// may be nil.
func NewToolbar(names []string, onShape func(name string), onRotate func()) *Toolbar {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 200})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x3a, A: 255}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x50, A: 255}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x66, B: 0x99, A: 255}),
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{
		Idle:    color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Pressed: color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	tb := &Toolbar{panel: panel}

	for _, name := range names {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(name, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(84, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onShape != nil {
					onShape(name)
				}
			}),
		)
		panel.AddChild(btn)
	}

	rotateBtn := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Rotate", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(84, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onRotate != nil {
				onRotate()
			}
		}),
	)
	panel.AddChild(rotateBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	tb.ui = &ebitenui.UI{Container: root}
	return tb
}

// Contains reports whether a screen point lies over the toolbar panel.
func (t *Toolbar) Contains(x, y float64) bool {
	if t == nil || t.panel == nil {
		return false
	}
	return image.Pt(int(x), int(y)).In(t.panel.GetWidget().Rect)
}

func (t *Toolbar) Update() {
	if t == nil || t.ui == nil {
		return
	}
	t.ui.Update()
}

func (t *Toolbar) Draw(screen *ebiten.Image) {
	if t == nil || t.ui == nil {
		return
	}
	t.ui.Draw(screen)
}
