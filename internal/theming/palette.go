// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/palette.go
// Summary: Startup color palette derived from a Chroma style.
// Usage: Load(name, fg, bg) before the editor sends its own default colors.

package theming

import (
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/framegrace/texelvim/protocol"
)

const DefaultStyleName = "catppuccin-mocha"

// Palette is the default color triple used until the editor overrides it.
type Palette struct {
	Foreground protocol.Color
	Background protocol.Color
	Special    protocol.Color
}

// Fallback is used when a style leaves a color unset.
var Fallback = Palette{
	Foreground: 0xffffff,
	Background: 0x000000,
	Special:    0xff0000,
}

// Load resolves a Chroma style by name, falling back to DefaultStyleName.
// Non-empty fg and bg ("#rrggbb") override the style's colors.
func Load(name, fg, bg string) Palette {
	if name == "" {
		name = DefaultStyleName
	}
	if _, ok := styles.Registry[name]; !ok {
		log.Printf("theming: unknown style %q, using %s", name, DefaultStyleName)
		name = DefaultStyleName
	}
	p := FromStyle(styles.Get(name))
	if c, ok := parseOverride("foreground", fg); ok {
		p.Foreground = c
	}
	if c, ok := parseOverride("background", bg); ok {
		p.Background = c
	}
	return p
}

// FromStyle extracts text, background and error colors from style.
func FromStyle(style *chroma.Style) Palette {
	p := Fallback
	if c := style.Get(chroma.Text).Colour; c.IsSet() {
		p.Foreground = fromColour(c)
	}
	if c := style.Get(chroma.Background).Background; c.IsSet() {
		p.Background = fromColour(c)
	}
	if c := style.Get(chroma.Error).Colour; c.IsSet() {
		p.Special = fromColour(c)
	}
	return p
}

func fromColour(c chroma.Colour) protocol.Color {
	return protocol.NewColor(c.Red(), c.Green(), c.Blue())
}

func parseOverride(field, value string) (protocol.Color, bool) {
	if value == "" {
		return protocol.NoColor, false
	}
	c, ok := protocol.ParseHexColor(value)
	if !ok {
		log.Printf("theming: ignoring invalid %s %q", field, value)
	}
	return c, ok
}
