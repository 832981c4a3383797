// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/app.go
// Summary: Presentation loop tying a window backend to an editor connection.
// Usage: cmd/texelvim builds a window and a Launcher and calls Run; Run returns when the editor exits or the window closes.
// Notes: Grid state is touched only by the goroutine running Run.

package clientruntime

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/framegrace/texelvim/client"
	"github.com/framegrace/texelvim/internal/effects"
	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/protocol"
)

// Editor is a running editor connection as seen by the presentation loop.
type Editor interface {
	Commands() <-chan protocol.Command
	Requests() chan<- protocol.ClientCommand
	Close() error
}

// Launcher starts an editor attached with a cols x rows grid.
type Launcher func(cols, rows int) (Editor, error)

// Options configures the presentation loop.
type Options struct {
	// Cols and Rows fix the initial grid; zero derives them from the window size.
	Cols int
	Rows int
	// Defaults are used until the editor sends its own default colors.
	Defaults client.DefaultColors
	// GlyphCacheMax bounds the glyph cache; zero is unbounded.
	GlyphCacheMax int
	// FlashColor tints the frame on a visual bell. A zero alpha disables the flash.
	FlashColor    color.RGBA
	FlashDuration time.Duration
	PanicLogger   *PanicLogger
}

// ErrEditorExited wraps the transport error that ended the editor connection.
var ErrEditorExited = errors.New("editor exited")

// initialSize picks the attach size from opts or the window.
func initialSize(win window.Window, cellW, cellH int, opts Options) (int, int) {
	cols, rows := opts.Cols, opts.Rows
	w, h := win.Size()
	if cols <= 0 {
		cols = w / cellW
	}
	if rows <= 0 {
		rows = h / cellH
	}
	return max(cols, 1), max(rows, 1)
}

// Run attaches an editor to win and drives the presentation loop until the
// editor closes its connection or the window asks to quit.
func Run(win window.Window, launch Launcher, opts Options) error {
	if opts.PanicLogger != nil {
		defer opts.PanicLogger.Recover("run")
	}
	raster := win.Rasterizer()
	cellW, cellH := raster.CellSize()
	cellW, cellH = max(cellW, 1), max(cellH, 1)
	cols, rows := initialSize(win, cellW, cellH, opts)

	editor, err := launch(cols, rows)
	if err != nil {
		return fmt.Errorf("launch editor: %w", err)
	}
	defer editor.Close()
	log.Printf("client: attached %dx%d grid, cell %dx%d px", cols, rows, cellW, cellH)

	var flash *effects.Flash
	if opts.FlashColor.A != 0 {
		duration := opts.FlashDuration
		if duration == 0 {
			duration = effects.DefaultFlashDuration
		}
		flash = effects.NewFlash(opts.FlashColor, duration)
	}
	glyphs := NewGlyphCache(raster, opts.GlyphCacheMax)
	ui := &uiState{
		win:        win,
		state:      client.NewState(opts.Defaults),
		translator: NewInputTranslator(cellW, cellH, cols, rows),
		renderer:   newRenderer(win.Surface(), raster, glyphs, flash),
		flash:      flash,
		requests:   editor.Requests(),
	}
	return loop(ui, win.Events(), editor.Commands())
}

func loop(ui *uiState, events <-chan window.Event, commands <-chan protocol.Command) error {
	var ticker *time.Ticker
	var tick <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stopTicker()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ui.handleEvent(ev) {
				log.Printf("client: window closed")
				return nil
			}
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			res := ui.drain(cmd, commands)
			if res.closed {
				if res.err != nil {
					return fmt.Errorf("%w: %w", ErrEditorExited, res.err)
				}
				log.Printf("client: editor exited")
				return nil
			}
		case <-tick:
			ui.tick()
		}

		switch flashing := ui.flashing(); {
		case flashing && ticker == nil:
			ticker = time.NewTicker(flashFrameInterval)
			tick = ticker.C
		case !flashing && ticker != nil:
			stopTicker()
			ui.tick()
		}
	}
}
