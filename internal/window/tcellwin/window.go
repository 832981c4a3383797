// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/tcellwin/window.go
// Summary: Terminal backend: one pixel per cell, events from tcell.
// Usage: Open() for the real terminal, New(screen) for a prepared (or simulated) screen.

package tcellwin

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelvim/internal/window"
)

var (
	screenFactoryMu sync.RWMutex
	screenFactory   = tcell.NewScreen
)

// SetScreenFactory overrides how Open creates its screen. Passing nil
// restores tcell.NewScreen.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	screenFactoryMu.Lock()
	defer screenFactoryMu.Unlock()
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Window drives a tcell screen.
type Window struct {
	screen  tcell.Screen
	surface *Surface
	events  chan window.Event
	done    chan struct{}

	closeOnce sync.Once
	mouse     mouseTracker
}

// Open creates and initialises the terminal screen.
func Open() (*Window, error) {
	screenFactoryMu.RLock()
	factory := screenFactory
	screenFactoryMu.RUnlock()
	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create screen failed: %w", err)
	}
	return New(screen)
}

// New initialises screen and starts polling it for events.
func New(screen tcell.Screen) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen failed: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	w := &Window{
		screen:  screen,
		surface: &Surface{screen: screen},
		events:  make(chan window.Event, 64),
		done:    make(chan struct{}),
	}
	go w.pollLoop()
	return w, nil
}

func (w *Window) pollLoop() {
	defer close(w.events)
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		for _, out := range w.translate(ev) {
			select {
			case w.events <- out:
			case <-w.done:
				return
			}
		}
	}
}

func (w *Window) translate(ev tcell.Event) []window.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		return w.mouse.translate(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return []window.Event{window.Resized{Width: cols, Height: rows}}
	}
	return nil
}

// Events implements window.Window. The channel closes after Close.
func (w *Window) Events() <-chan window.Event { return w.events }

// Surface implements window.Window.
func (w *Window) Surface() window.Surface { return w.surface }

// Rasterizer implements window.Window.
func (w *Window) Rasterizer() window.Rasterizer { return rasterizer{} }

// Size returns the terminal size in cells, which are one pixel each.
func (w *Window) Size() (int, int) { return w.screen.Size() }

func (w *Window) SetTitle(title string) {
	w.screen.SetTitle(title)
}

// Bell beeps for the audible bell; the visual bell is drawn by the caller.
func (w *Window) Bell(visual bool) {
	if visual {
		return
	}
	if err := w.screen.Beep(); err != nil {
		log.Printf("tcellwin: beep failed: %v", err)
	}
}

// Close restores the terminal.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.screen.DisableMouse()
		w.screen.Fini()
	})
	return nil
}

var _ window.Window = (*Window)(nil)
