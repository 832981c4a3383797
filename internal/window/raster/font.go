// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/raster/font.go
// Summary: TrueType glyph rasterizer with fixed cell metrics.
// Usage: LoadFont(path, size, dpi); an empty path selects the embedded Go Mono face.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/framegrace/texelvim/internal/window"
)

// Fallbacks for LoadFont; they match the font section of texelvim.json.
const (
	DefaultFontSize = 14.0
	DefaultDPI      = 96.0
)

// Glyph is a rasterized text run. Transparent pixels let the cell
// background show through when blitted with Over.
type Glyph struct {
	img *image.RGBA
}

// Size implements window.Texture.
func (g *Glyph) Size() (int, int) {
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the glyph pixels.
func (g *Glyph) Image() *image.RGBA { return g.img }

// Font rasterizes text with one face. Not safe for concurrent use.
type Font struct {
	face   font.Face
	ascent int
	cellW  int
	cellH  int
}

// LoadFont parses a TrueType file. Size is in points.
func LoadFont(path string, size, dpi float64) (*Font, error) {
	data := gomono.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		data = raw
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	return NewFont(face), nil
}

// NewFont wraps an existing face, deriving the cell box from its metrics
// and the advance of 'M'.
func NewFont(face font.Face) *Font {
	metrics := face.Metrics()
	f := &Font{
		face:   face,
		ascent: metrics.Ascent.Ceil(),
		cellH:  (metrics.Ascent + metrics.Descent).Ceil(),
	}
	if advance, ok := face.GlyphAdvance('M'); ok {
		f.cellW = advance.Ceil()
	}
	if f.cellW < 1 {
		f.cellW = 1
	}
	if f.cellH < 1 {
		f.cellH = 1
	}
	return f
}

// CellSize implements window.Rasterizer.
func (f *Font) CellSize() (int, int) { return f.cellW, f.cellH }

// Rasterize implements window.Rasterizer. The texture is at least one cell
// wide per display column of text.
func (f *Font) Rasterize(text string, fg color.RGBA) (window.Texture, error) {
	if text == "" {
		return nil, fmt.Errorf("rasterize: empty text")
	}
	width := font.MeasureString(f.face, text).Ceil()
	if floor := f.cellW * max(1, runewidth.StringWidth(text)); width < floor {
		width = floor
	}
	img := image.NewRGBA(image.Rect(0, 0, width, f.cellH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	drawer.DrawString(text)
	return &Glyph{img: img}, nil
}

// Close releases the face.
func (f *Font) Close() error {
	return f.face.Close()
}

var _ window.Rasterizer = (*Font)(nil)
