// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/renderer.go
// Summary: Render pass from grid state to the window surface.
// Usage: Called by the presentation loop after a flush; draws cells, decorations and the cursor, then presents.

package clientruntime

import (
	"image"
	"image/color"
	"log"
	"time"

	"github.com/framegrace/texelvim/client"
	"github.com/framegrace/texelvim/internal/effects"
	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/protocol"
)

// minDecorationHeight is the smallest cell height that gets underline and
// strikethrough rules.
const minDecorationHeight = 4

type renderer struct {
	surface window.Surface
	glyphs  *GlyphCache
	cellW   int
	cellH   int
	flash   *effects.Flash
	now     func() time.Time

	failed map[string]bool
}

func newRenderer(surface window.Surface, raster window.Rasterizer, glyphs *GlyphCache, flash *effects.Flash) *renderer {
	cw, ch := raster.CellSize()
	return &renderer{
		surface: surface,
		glyphs:  glyphs,
		cellW:   max(cw, 1),
		cellH:   max(ch, 1),
		flash:   flash,
		now:     time.Now,
		failed:  make(map[string]bool),
	}
}

func (r *renderer) cellRect(row, col, span int) image.Rectangle {
	x, y := col*r.cellW, row*r.cellH
	return image.Rect(x, y, x+span*r.cellW, y+r.cellH)
}

func (r *renderer) tint(c color.RGBA, now time.Time) color.RGBA {
	if r.flash == nil {
		return c
	}
	return r.flash.Tint(c, now)
}

// render draws one full frame of st and presents it.
func (r *renderer) render(st *client.State) error {
	now := r.now()
	defaults := st.DefaultColors()
	r.surface.Clear(r.tint(rgba(defaults.Background), now))

	grid := st.Grid()
	cols, rows := grid.Size()
	styles := make([]client.Style, cols)
	for row := 0; row < rows; row++ {
		cells := grid.Row(row)
		// Every background of the row is filled before its first glyph.
		for col, cell := range cells {
			styles[col] = st.Resolve(cell.Highlight)
			if styles[col].Background != defaults.Background {
				r.surface.FillRect(r.cellRect(row, col, 1), r.tint(rgba(styles[col].Background), now))
			}
		}
		for col, cell := range cells {
			colors := colorsOf(styles[col])
			r.drawGlyph(cell.Text, colors.fg, row, col)
			if r.cellH >= minDecorationHeight {
				r.decorate(r.cellRect(row, col, 1), styles[col], colors)
			}
		}
	}

	r.drawCursor(st)
	return r.surface.Present()
}

// drawGlyph blits text at the fixed cell box. Blank cells and the empty
// right half of a wide character draw nothing.
func (r *renderer) drawGlyph(text string, fg color.RGBA, row, col int) {
	if text == "" || text == " " {
		return
	}
	g, err := r.glyphs.Get(text, fg)
	if err != nil {
		if !r.failed[text] {
			r.failed[text] = true
			log.Printf("render: glyph skipped: %v", err)
		}
		return
	}
	r.surface.Blit(g.Texture, r.cellRect(row, col, g.Cells))
}

func (r *renderer) decorate(rect image.Rectangle, style client.Style, colors cellColors) {
	attrs := style.Attrs
	bottom := rect.Max.Y - 1
	if attrs.Underline {
		line := colors.fg
		if attrs.Special.Valid() {
			line = colors.special
		}
		r.surface.FillRect(image.Rect(rect.Min.X, bottom, rect.Max.X, bottom+1), line)
	}
	if attrs.Undercurl {
		for x := rect.Min.X; x < rect.Max.X; x += 2 {
			r.surface.FillRect(image.Rect(x, bottom, x+1, bottom+1), colors.special)
		}
	}
	if attrs.Strikethrough {
		mid := rect.Min.Y + r.cellH/2
		r.surface.FillRect(image.Rect(rect.Min.X, mid, rect.Max.X, mid+1), colors.fg)
	}
}

func nativeShape(shape protocol.CursorShape) window.CursorShape {
	switch shape {
	case protocol.CursorBlock:
		return window.CursorBlock
	case protocol.CursorHorizontal:
		return window.CursorUnderline
	default:
		return window.CursorBar
	}
}

// drawCursor paints the cursor on top of the cells. Surfaces with a native
// cursor are told where to put it instead.
func (r *renderer) drawCursor(st *client.State) {
	pos, ok := st.Cursor()
	native, hasNative := r.surface.(window.CursorDrawer)
	if !ok || st.Busy() {
		if hasNative {
			native.HideCursor()
		}
		return
	}
	mode, styled := st.CursorMode()
	if hasNative {
		shape := window.CursorBar
		if styled {
			shape = nativeShape(mode.CursorShape)
		}
		native.ShowCursor(pos.Col, pos.Row, shape)
		return
	}

	cell, _ := st.Grid().Cell(pos.Row, pos.Col)
	colors := colorsOf(st.Resolve(cell.Highlight))
	fill, text := colors.fg, colors.bg
	if styled && mode.AttrID != 0 {
		cursor := colorsOf(st.Resolve(mode.AttrID))
		fill, text = cursor.bg, cursor.fg
	}

	rect := r.cellRect(pos.Row, pos.Col, 1)
	if !styled {
		r.surface.FillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+max(1, r.cellW/8), rect.Max.Y), fill)
		return
	}
	pct := mode.CellPercentage
	if pct <= 0 || pct > 100 {
		pct = 100
	}
	switch mode.CursorShape {
	case protocol.CursorBlock:
		r.surface.FillRect(rect, fill)
		r.drawGlyph(cell.Text, text, pos.Row, pos.Col)
	case protocol.CursorVertical:
		w := max(1, r.cellW*pct/100)
		r.surface.FillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+w, rect.Max.Y), fill)
	case protocol.CursorHorizontal:
		h := max(1, r.cellH*pct/100)
		r.surface.FillRect(image.Rect(rect.Min.X, rect.Max.Y-h, rect.Max.X, rect.Max.Y), fill)
	default:
		r.surface.FillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+max(1, r.cellW/8), rect.Max.Y), fill)
	}
}
