// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelvim/main.go
// Summary: texelvim command: runs an embedded neovim inside a desktop window or the terminal.
// Usage: texelvim [flags] [file ...]

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/texelvim/client"
	"github.com/framegrace/texelvim/config"
	"github.com/framegrace/texelvim/internal/bell"
	"github.com/framegrace/texelvim/internal/nvimbridge"
	clientrt "github.com/framegrace/texelvim/internal/runtime/client"
	"github.com/framegrace/texelvim/internal/theming"
	"github.com/framegrace/texelvim/internal/window/fynewin"
	"github.com/framegrace/texelvim/internal/window/raster"
	"github.com/framegrace/texelvim/internal/window/tcellwin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := clientrt.SetupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	} else {
		defer logFile.Close()
	}

	s, err := parseSettings(config.System(), os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := config.Err(); err != nil {
		log.Printf("config: using defaults: %v", err)
	}

	backend, err := chooseBackend(s.backend, runtime.GOOS, term.IsTerminal(int(os.Stdin.Fd())), os.Getenv)
	if err != nil {
		return err
	}

	panicLogger := clientrt.NewPanicLogger(s.panicLog)
	palette := theming.Load(s.style, s.foreground, s.background)
	opts := clientrt.Options{
		Cols: s.cols,
		Rows: s.rows,
		Defaults: client.DefaultColors{
			Foreground: palette.Foreground,
			Background: palette.Background,
			Special:    palette.Special,
		},
		GlyphCacheMax: s.glyphCacheMax,
		FlashColor:    s.flash,
		PanicLogger:   panicLogger,
	}
	launch := func(cols, rows int) (clientrt.Editor, error) {
		b, err := nvimbridge.Start(nvimbridge.Options{
			Command: s.nvimCommand,
			Args:    s.nvimArgs,
			Cols:    cols,
			Rows:    rows,
			Go:      panicLogger.Go,
		})
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	log.Printf("texelvim: starting %s backend with %s", backend, s.nvimCommand)
	if backend == backendTerminal {
		return runTerminal(launch, opts)
	}
	return runGUI(s, launch, opts, panicLogger)
}

func runTerminal(launch clientrt.Launcher, opts clientrt.Options) error {
	win, err := tcellwin.Open()
	if err != nil {
		return err
	}
	defer win.Close()
	return clientrt.Run(win, launch, opts)
}

// runGUI keeps the fyne event loop on the main goroutine and the
// presentation loop on its own.
func runGUI(s settings, launch clientrt.Launcher, opts clientrt.Options, panicLogger *clientrt.PanicLogger) error {
	font, err := raster.LoadFont(s.fontPath, s.fontSize, s.fontDPI)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer font.Close()

	winOpts := fynewin.Options{Title: s.title, Width: s.width, Height: s.height, Font: font}
	if s.bell {
		player := bell.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("bell: audio unavailable: %v", err)
		}
		defer player.Close()
		winOpts.Bell = player
	}
	win := fynewin.New(winOpts)

	errCh := make(chan error, 1)
	panicLogger.Go("presentation", func() {
		errCh <- clientrt.Run(win, launch, opts)
		win.Close()
	})
	win.ShowAndRun()

	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		return errors.New("presentation loop did not stop")
	}
}
