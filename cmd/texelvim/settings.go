// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelvim/settings.go
// Summary: Merges texelvim.json with command line flags.

package main

import (
	"flag"
	"image/color"
	"io"

	"github.com/framegrace/texelvim/config"
	"github.com/framegrace/texelvim/internal/window/raster"
	"github.com/framegrace/texelvim/protocol"
)

type settings struct {
	backend string

	nvimCommand string
	nvimArgs    []string

	fontPath string
	fontSize float64
	fontDPI  float64

	title  string
	width  int
	height int
	cols   int
	rows   int

	style      string
	foreground string
	background string
	flash      color.RGBA

	glyphCacheMax int
	bell          bool
	visualBell    bool

	panicLog string
}

// parseSettings reads defaults from cfg and lets flags override them.
// Positional arguments are passed on to the editor.
func parseSettings(cfg config.Config, args []string, output io.Writer) (settings, error) {
	s := settings{
		backend:       cfg.GetString("window", "backend", backendAuto),
		nvimCommand:   cfg.GetString("nvim", "command", "nvim"),
		nvimArgs:      cfg.GetStringSlice("nvim", "args", nil),
		fontPath:      cfg.GetString("font", "path", ""),
		fontSize:      cfg.GetFloat("font", "size", raster.DefaultFontSize),
		fontDPI:       cfg.GetFloat("font", "dpi", raster.DefaultDPI),
		title:         cfg.GetString("window", "title", "texelvim"),
		width:         cfg.GetInt("window", "width", 1024),
		height:        cfg.GetInt("window", "height", 768),
		style:         cfg.GetString("theme", "style", ""),
		foreground:    cfg.GetString("theme", "foreground", ""),
		background:    cfg.GetString("theme", "background", ""),
		glyphCacheMax: cfg.GetInt("glyph_cache", "max_entries", 0),
		bell:          cfg.GetBool("bell", "enabled", true),
		visualBell:    cfg.GetBool("bell", "visual", true),
	}

	fs := flag.NewFlagSet("texelvim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&s.backend, "backend", s.backend, "Window backend: auto, gui or terminal")
	fs.StringVar(&s.fontPath, "font", s.fontPath, "TrueType font file (default: embedded Go Mono)")
	fs.Float64Var(&s.fontSize, "font-size", s.fontSize, "Font size in points")
	fs.StringVar(&s.nvimCommand, "nvim", s.nvimCommand, "Editor executable")
	fs.StringVar(&s.panicLog, "panic-log", "", "File to append panic stack traces")
	fs.IntVar(&s.cols, "cols", 0, "Initial grid columns (default: fit the window)")
	fs.IntVar(&s.rows, "rows", 0, "Initial grid rows (default: fit the window)")
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}
	s.nvimArgs = append(s.nvimArgs, fs.Args()...)

	if c, ok := protocol.ParseHexColor(cfg.GetString("theme", "flash", "#ffffff")); ok && s.visualBell {
		s.flash = c.RGBA(color.RGBA{})
	}
	return s, nil
}
