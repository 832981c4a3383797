// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/colors.go
// Summary: Conversion from editor colors to surface colors.
// Usage: Shared by the renderer and the visual bell setup.

package clientruntime

import (
	"image/color"

	"github.com/framegrace/texelvim/client"
	"github.com/framegrace/texelvim/protocol"
)

var opaqueBlack = color.RGBA{A: 0xFF}

// rgba converts a packed editor color; unset colors become black.
func rgba(c protocol.Color) color.RGBA {
	return c.RGBA(opaqueBlack)
}

// cellColors is a resolved style in surface colors.
type cellColors struct {
	fg, bg, special color.RGBA
}

func colorsOf(style client.Style) cellColors {
	return cellColors{
		fg:      rgba(style.Foreground),
		bg:      rgba(style.Background),
		special: rgba(style.Special),
	}
}
