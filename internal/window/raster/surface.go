// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/raster/surface.go
// Summary: In-memory RGBA surface shared by the GUI backend and tests.
// Usage: NewSurface(w, h, onPresent); draw through window.Surface, read with Image.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	xdraw "golang.org/x/image/draw"

	"github.com/framegrace/texelvim/internal/window"
)

// Surface draws into an *image.RGBA. OnPresent receives a snapshot of the
// frame on every Present.
type Surface struct {
	img       *image.RGBA
	onPresent func(*image.RGBA) error
}

// NewSurface allocates a w x h surface. onPresent may be nil.
func NewSurface(w, h int, onPresent func(*image.RGBA) error) *Surface {
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		onPresent: onPresent,
	}
}

// Image returns the back buffer. The caller must not retain it across
// frames.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Clear(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) Blit(t window.Texture, dst image.Rectangle) {
	g, ok := t.(*Glyph)
	if !ok {
		log.Printf("raster: cannot blit texture of type %T", t)
		return
	}
	src := g.img
	if src.Bounds().Size() == dst.Size() {
		draw.Draw(s.img, dst, src, src.Bounds().Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(s.img, dst, src, src.Bounds(), xdraw.Over, nil)
}

// Present hands a copy of the frame to the presenter.
func (s *Surface) Present() error {
	if s.onPresent == nil {
		return nil
	}
	frame := image.NewRGBA(s.img.Bounds())
	copy(frame.Pix, s.img.Pix)
	return s.onPresent(frame)
}

// Resize reallocates the back buffer; content is discarded.
func (s *Surface) Resize(width, height int) {
	if b := s.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

var _ window.Surface = (*Surface)(nil)
