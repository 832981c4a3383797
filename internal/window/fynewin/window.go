// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/fynewin/window.go
// Summary: Desktop backend: a fyne window showing a software-rendered frame.
// Usage: New(opts), start the client runtime in a goroutine, then ShowAndRun on the main goroutine.

package fynewin

import (
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/internal/window/raster"
)

// Ringer plays the audible bell.
type Ringer interface {
	Ring()
}

// Options configures the desktop window.
type Options struct {
	Title  string
	Width  int
	Height int
	Font   *raster.Font
	Bell   Ringer
}

// Window is a fyne-backed window.Window.
type Window struct {
	app     fyne.App
	win     fyne.Window
	grid    *gridWidget
	surface *raster.Surface
	font    *raster.Font
	bell    Ringer
	events  chan window.Event

	mu     sync.Mutex
	width  int
	height int

	closeOnce sync.Once
	done      chan struct{}
}

// New creates the application and its window without showing it.
func New(opts Options) *Window {
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}
	w := &Window{
		app:    app.New(),
		font:   opts.Font,
		bell:   opts.Bell,
		events: make(chan window.Event, 1024),
		width:  opts.Width,
		height: opts.Height,
		done:   make(chan struct{}),
	}
	w.win = w.app.NewWindow(opts.Title)
	w.grid = newGridWidget(w.emit, w.scale)
	w.grid.onResize = w.resized
	w.surface = raster.NewSurface(opts.Width, opts.Height, w.present)

	w.win.SetContent(w.grid)
	w.win.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	w.win.SetPadded(false)
	w.win.SetCloseIntercept(func() {
		w.emit(window.Quit{})
	})
	if dc, ok := w.win.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(w.grid.keys.keyDown(w.emit))
		dc.SetOnKeyUp(w.grid.keys.keyUp(w.emit))
	}
	w.win.Canvas().SetOnTypedRune(func(r rune) {
		w.emit(window.TextInput{Text: string(r)})
	})
	return w
}

// ShowAndRun blocks on the fyne event loop until Close.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) scale() float32 {
	s := w.win.Canvas().Scale()
	if s <= 0 {
		return 1
	}
	return s
}

func (w *Window) emit(ev window.Event) {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- ev:
	case <-time.After(100 * time.Millisecond):
		log.Printf("fynewin: dropped %T, event queue full", ev)
	}
}

func (w *Window) resized(width, height int) {
	w.mu.Lock()
	changed := width != w.width || height != w.height
	w.width, w.height = width, height
	w.mu.Unlock()
	if changed {
		w.emit(window.Resized{Width: width, Height: height})
	}
}

func (w *Window) present(frame *image.RGBA) error {
	fyne.Do(func() {
		w.grid.setFrame(frame)
	})
	return nil
}

func (w *Window) Events() <-chan window.Event { return w.events }

func (w *Window) Surface() window.Surface { return w.surface }

func (w *Window) Rasterizer() window.Rasterizer { return w.font }

// Size returns the canvas size in device pixels.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) SetTitle(title string) {
	fyne.Do(func() {
		w.win.SetTitle(title)
	})
}

// Bell rings the audible bell; the caller draws the visual one.
func (w *Window) Bell(visual bool) {
	if visual || w.bell == nil {
		return
	}
	w.bell.Ring()
}

// Close quits the fyne loop, making ShowAndRun return.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		fyne.Do(func() {
			w.app.Quit()
		})
	})
	return nil
}

var _ window.Window = (*Window)(nil)
