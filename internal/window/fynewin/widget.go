package fynewin

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/framegrace/texelvim/internal/window"
)

const doubleClickInterval = 400 * time.Millisecond

// gridWidget shows the latest frame and turns pointer input into window
// events in device pixels.
type gridWidget struct {
	widget.BaseWidget

	img      *canvas.Image
	emit     func(window.Event)
	scale    func() float32
	onResize func(w, h int)

	keys   keyState
	clicks clickCounter
}

func newGridWidget(emit func(window.Event), scale func() float32) *gridWidget {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillStretch
	g := &gridWidget{img: img, emit: emit, scale: scale}
	g.ExtendBaseWidget(g)
	return g
}

func (g *gridWidget) CreateRenderer() fyne.WidgetRenderer {
	return &gridRenderer{grid: g}
}

func (g *gridWidget) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

// Resize reports the new size in device pixels before laying out.
func (g *gridWidget) Resize(size fyne.Size) {
	g.BaseWidget.Resize(size)
	if g.onResize != nil {
		s := g.scale()
		g.onResize(int(size.Width*s), int(size.Height*s))
	}
}

func (g *gridWidget) setFrame(frame *image.RGBA) {
	g.img.Image = frame
	g.img.Refresh()
}

func (g *gridWidget) pixels(pos fyne.Position) (int, int) {
	s := g.scale()
	return int(pos.X * s), int(pos.Y * s)
}

func (g *gridWidget) MouseDown(ev *desktop.MouseEvent) {
	id, ok := mouseButton(ev.Button)
	if !ok {
		return
	}
	x, y := g.pixels(ev.Position)
	g.emit(window.MouseButton{
		Button:  id,
		Pressed: true,
		X:       x,
		Y:       y,
		Clicks:  g.clicks.press(id, x, y, time.Now()),
		Mods:    translateModifier(ev.Modifier),
	})
}

func (g *gridWidget) MouseUp(ev *desktop.MouseEvent) {
	id, ok := mouseButton(ev.Button)
	if !ok {
		return
	}
	x, y := g.pixels(ev.Position)
	g.emit(window.MouseButton{Button: id, Pressed: false, X: x, Y: y, Clicks: 1, Mods: translateModifier(ev.Modifier)})
}

func (g *gridWidget) MouseIn(*desktop.MouseEvent) {}

func (g *gridWidget) MouseMoved(ev *desktop.MouseEvent) {
	x, y := g.pixels(ev.Position)
	g.emit(window.MouseMotion{X: x, Y: y, Mods: translateModifier(ev.Modifier)})
}

func (g *gridWidget) MouseOut() {}

// Dragged delivers motion while a button is held.
func (g *gridWidget) Dragged(ev *fyne.DragEvent) {
	x, y := g.pixels(ev.Position)
	g.emit(window.MouseMotion{X: x, Y: y, Mods: g.keys.mods()})
}

func (g *gridWidget) DragEnd() {}

func (g *gridWidget) Scrolled(ev *fyne.ScrollEvent) {
	x, y := g.pixels(ev.Position)
	wheel := window.MouseWheel{X: x, Y: y, Mods: g.keys.mods()}
	switch {
	case ev.Scrolled.DY > 0:
		wheel.DY = 1
	case ev.Scrolled.DY < 0:
		wheel.DY = -1
	}
	switch {
	case ev.Scrolled.DX > 0:
		wheel.DX = 1
	case ev.Scrolled.DX < 0:
		wheel.DX = -1
	}
	if wheel.DX == 0 && wheel.DY == 0 {
		return
	}
	g.emit(wheel)
}

type gridRenderer struct {
	grid *gridWidget
}

func (r *gridRenderer) Layout(size fyne.Size) {
	r.grid.img.Resize(size)
	r.grid.img.Move(fyne.NewPos(0, 0))
}

func (r *gridRenderer) MinSize() fyne.Size {
	return r.grid.MinSize()
}

func (r *gridRenderer) Refresh() {
	r.grid.img.Refresh()
}

func (r *gridRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.grid.img}
}

func (r *gridRenderer) Destroy() {}

var (
	_ desktop.Mouseable = (*gridWidget)(nil)
	_ desktop.Hoverable = (*gridWidget)(nil)
	_ fyne.Draggable    = (*gridWidget)(nil)
	_ fyne.Scrollable   = (*gridWidget)(nil)
)
