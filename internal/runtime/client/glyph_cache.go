// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/glyph_cache.go
// Summary: Memoized glyph textures keyed by text and foreground color.
// Usage: The renderer calls Get for every visible cell; equal keys share one Glyph.

package clientruntime

import (
	"container/list"
	"fmt"
	"image/color"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelvim/internal/window"
)

// Glyph is a rendered grapheme. Width and Height are the texture's natural
// size and only informational; Cells is the display width of the text (1 or
// 2) and fixes the box the glyph is scaled into.
type Glyph struct {
	Texture window.Texture
	Width   int
	Height  int
	Cells   int
}

type glyphKey struct {
	text string
	fg   color.RGBA
}

type glyphEntry struct {
	key   glyphKey
	glyph *Glyph
}

// CacheStats counts lookups since the cache was created.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// GlyphCache maps (text, color) to a rendered Glyph. With maxEntries of 0 it
// never evicts; otherwise the least recently used entry goes first.
type GlyphCache struct {
	raster     window.Rasterizer
	maxEntries int

	entries map[glyphKey]*list.Element
	order   *list.List
	stats   CacheStats
}

// NewGlyphCache wraps r. A negative maxEntries is treated as unbounded.
func NewGlyphCache(r window.Rasterizer, maxEntries int) *GlyphCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &GlyphCache{
		raster:     r,
		maxEntries: maxEntries,
		entries:    make(map[glyphKey]*list.Element),
		order:      list.New(),
	}
}

// Get returns the cached glyph for text in fg, rasterizing on a miss.
func (c *GlyphCache) Get(text string, fg color.RGBA) (*Glyph, error) {
	key := glyphKey{text: text, fg: fg}
	if el, ok := c.entries[key]; ok {
		c.stats.Hits++
		c.order.MoveToFront(el)
		return el.Value.(*glyphEntry).glyph, nil
	}
	c.stats.Misses++
	tex, err := c.raster.Rasterize(text, fg)
	if err != nil {
		return nil, fmt.Errorf("rasterize %q: %w", text, err)
	}
	w, h := tex.Size()
	g := &Glyph{Texture: tex, Width: w, Height: h, Cells: cellSpan(text)}
	c.entries[key] = c.order.PushFront(&glyphEntry{key: key, glyph: g})
	c.evict()
	return g, nil
}

// cellSpan is the number of grid columns text occupies.
func cellSpan(text string) int {
	return min(max(runewidth.StringWidth(text), 1), 2)
}

func (c *GlyphCache) evict() {
	if c.maxEntries == 0 {
		return
	}
	for c.order.Len() > c.maxEntries {
		el := c.order.Back()
		c.order.Remove(el)
		delete(c.entries, el.Value.(*glyphEntry).key)
		c.stats.Evictions++
	}
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int { return c.order.Len() }

// Stats returns the lookup counters.
func (c *GlyphCache) Stats() CacheStats { return c.stats }
