package clientruntime

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/protocol"
)

type fakeTexture struct {
	text string
	fg   color.RGBA
	w, h int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeRaster struct {
	cw, ch   int
	calls    int
	fail     map[string]bool
	overhang int // extra texture pixels past the glyph's cells
}

func newFakeRaster(cw, ch int) *fakeRaster {
	return &fakeRaster{cw: cw, ch: ch, fail: map[string]bool{}}
}

func (r *fakeRaster) CellSize() (int, int) { return r.cw, r.ch }

func (r *fakeRaster) Rasterize(text string, fg color.RGBA) (window.Texture, error) {
	r.calls++
	if r.fail[text] {
		return nil, errors.New("no glyph")
	}
	return &fakeTexture{text: text, fg: fg, w: r.cw*max(1, runewidth.StringWidth(text)) + r.overhang, h: r.ch}, nil
}

type drawOp struct {
	kind  string
	rect  image.Rectangle
	color color.RGBA
	text  string
}

// recordingSurface logs every drawing call.
type recordingSurface struct {
	mu       sync.Mutex
	ops      []drawOp
	presents int
	w, h     int
}

func (s *recordingSurface) Clear(c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, drawOp{kind: "clear", color: c})
}

func (s *recordingSurface) FillRect(r image.Rectangle, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, drawOp{kind: "fill", rect: r, color: c})
}

func (s *recordingSurface) Blit(t window.Texture, dst image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tex := t.(*fakeTexture)
	s.ops = append(s.ops, drawOp{kind: "blit", rect: dst, color: tex.fg, text: tex.text})
}

func (s *recordingSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presents++
	return nil
}

func (s *recordingSurface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = w, h
}

func (s *recordingSurface) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
}

func (s *recordingSurface) snapshot() ([]drawOp, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]drawOp(nil), s.ops...), s.presents
}

// filter returns the ops of one kind.
func filter(ops []drawOp, kind string) []drawOp {
	var out []drawOp
	for _, op := range ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

type cursorCall struct {
	col, row int
	shape    window.CursorShape
	hidden   bool
}

// cursorSurface additionally records native cursor calls.
type cursorSurface struct {
	recordingSurface
	cursor []cursorCall
}

func (s *cursorSurface) ShowCursor(col, row int, shape window.CursorShape) {
	s.cursor = append(s.cursor, cursorCall{col: col, row: row, shape: shape})
}

func (s *cursorSurface) HideCursor() {
	s.cursor = append(s.cursor, cursorCall{hidden: true})
}

type fakeWindow struct {
	events  chan window.Event
	surface window.Surface
	raster  *fakeRaster
	w, h    int

	titles []string
	bells  []bool
	closed bool
}

func newFakeWindow(surface window.Surface, raster *fakeRaster, w, h int) *fakeWindow {
	return &fakeWindow{events: make(chan window.Event, 16), surface: surface, raster: raster, w: w, h: h}
}

func (w *fakeWindow) Events() <-chan window.Event { return w.events }
func (w *fakeWindow) Surface() window.Surface { return w.surface }
func (w *fakeWindow) Rasterizer() window.Rasterizer { return w.raster }
func (w *fakeWindow) Size() (int, int) { return w.w, w.h }
func (w *fakeWindow) SetTitle(title string) { w.titles = append(w.titles, title) }
func (w *fakeWindow) Bell(visual bool) { w.bells = append(w.bells, visual) }
func (w *fakeWindow) Close() error { w.closed = true; return nil }

type fakeEditor struct {
	commands chan protocol.Command
	requests chan protocol.ClientCommand

	mu     sync.Mutex
	closed bool
}

func newFakeEditor() *fakeEditor {
	return &fakeEditor{
		commands: make(chan protocol.Command, 64),
		requests: make(chan protocol.ClientCommand, 64),
	}
}

func (e *fakeEditor) Commands() <-chan protocol.Command { return e.commands }
func (e *fakeEditor) Requests() chan<- protocol.ClientCommand { return e.requests }

func (e *fakeEditor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *fakeEditor) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
