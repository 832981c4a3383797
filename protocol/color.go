// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: protocol/color.go
// Summary: Packed 24-bit colors as sent by the editor, plus conversion helpers.

package protocol

import (
	"image/color"
	"strconv"
)

// Color is a packed 0xRRGGBB value. NoColor marks an unset field that
// inherits the default color.
type Color int32

// NoColor is the inherit sentinel used by highlight and default color fields.
const NoColor Color = -1

// Valid reports whether the color carries an explicit RGB value.
func (c Color) Valid() bool {
	return c >= 0 && c <= 0xFFFFFF
}

// RGB splits the packed value into components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// RGBA converts to an opaque image color. Invalid colors map to fallback.
func (c Color) RGBA(fallback color.RGBA) color.RGBA {
	if !c.Valid() {
		return fallback
	}
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// NewColor packs 8-bit components.
func NewColor(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// ParseHexColor parses "#rrggbb". Returns NoColor and false on failure.
func ParseHexColor(value string) (Color, bool) {
	if len(value) != 7 || value[0] != '#' {
		return NoColor, false
	}
	v, err := strconv.ParseInt(value[1:], 16, 32)
	if err != nil {
		return NoColor, false
	}
	return Color(v), true
}
