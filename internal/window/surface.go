// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/surface.go
// Summary: Drawing and windowing contracts implemented by every backend.
// Usage: The client runtime renders through Surface and rasterizes glyphs through Rasterizer.

package window

import (
	"image"
	"image/color"
)

// Texture is a backend-owned rendered glyph.
type Texture interface {
	Size() (w, h int)
}

// Surface is the drawing target. Calls are made from the presentation loop
// only.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	// Blit draws t scaled into dst.
	Blit(t Texture, dst image.Rectangle)
	Present() error
	Resize(width, height int)
}

// CursorShape is the form of a native cursor.
type CursorShape int

const (
	CursorBar CursorShape = iota
	CursorBlock
	CursorUnderline
)

// CursorDrawer is implemented by surfaces with a native cursor. The renderer
// uses it instead of painting one.
type CursorDrawer interface {
	ShowCursor(col, row int, shape CursorShape)
	HideCursor()
}

// Rasterizer renders text into textures and reports the cell box in pixels.
type Rasterizer interface {
	CellSize() (w, h int)
	Rasterize(text string, fg color.RGBA) (Texture, error)
}

// Window is a top-level window or terminal screen.
type Window interface {
	Events() <-chan Event
	Surface() Surface
	Rasterizer() Rasterizer
	// Size returns the drawable size in pixels.
	Size() (w, h int)
	SetTitle(title string)
	Bell(visual bool)
	Close() error
}
