package clientruntime

import "testing"

func TestGlyphCacheReturnsSameEntryForEqualKeys(t *testing.T) {
	raster := newFakeRaster(8, 16)
	cache := NewGlyphCache(raster, 0)

	first, err := cache.Get("a", white)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := cache.Get("a", white)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical entry for equal keys")
	}
	if raster.calls != 1 {
		t.Fatalf("expected one rasterization, got %d", raster.calls)
	}
	if stats := cache.Stats(); stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	other, err := cache.Get("a", red)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if other == first {
		t.Fatalf("different colors must not share an entry")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cache.Len())
	}
}

func TestGlyphCacheEvictsLeastRecentlyUsed(t *testing.T) {
	raster := newFakeRaster(8, 16)
	cache := NewGlyphCache(raster, 2)

	for _, text := range []string{"a", "b", "a", "c"} {
		if _, err := cache.Get(text, white); err != nil {
			t.Fatalf("get %q: %v", text, err)
		}
	}
	if raster.calls != 3 {
		t.Fatalf("expected 3 rasterizations, got %d", raster.calls)
	}
	if _, err := cache.Get("a", white); err != nil {
		t.Fatal(err)
	}
	if raster.calls != 3 {
		t.Fatalf("recently used entry was evicted")
	}
	if _, err := cache.Get("b", white); err != nil {
		t.Fatal(err)
	}
	if raster.calls != 4 {
		t.Fatalf("expected least recently used entry to be re-rendered")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected bound of 2, got %d", cache.Len())
	}
	if stats := cache.Stats(); stats.Evictions != 2 {
		t.Fatalf("expected 2 evictions, got %+v", stats)
	}
}

func TestGlyphCacheMeasuresCellSpan(t *testing.T) {
	cache := NewGlyphCache(newFakeRaster(8, 16), 0)
	tests := []struct {
		text  string
		cells int
	}{
		{"a", 1},
		{"世", 2},
	}
	for _, tt := range tests {
		g, err := cache.Get(tt.text, white)
		if err != nil {
			t.Fatalf("get %q: %v", tt.text, err)
		}
		if g.Cells != tt.cells || g.Height != 16 {
			t.Fatalf("%q: got %+v, want %d cells", tt.text, g, tt.cells)
		}
	}
}

func TestGlyphCacheSpanIgnoresTextureWidth(t *testing.T) {
	raster := newFakeRaster(8, 16)
	raster.overhang = 10
	cache := NewGlyphCache(raster, 0)
	tests := []struct {
		text  string
		cells int
		width int
	}{
		{"W", 1, 18},
		{"%", 1, 18},
		{"世", 2, 26},
	}
	for _, tt := range tests {
		g, err := cache.Get(tt.text, white)
		if err != nil {
			t.Fatalf("get %q: %v", tt.text, err)
		}
		if g.Cells != tt.cells || g.Width != tt.width {
			t.Fatalf("%q: got cells=%d width=%d, want cells=%d width=%d", tt.text, g.Cells, g.Width, tt.cells, tt.width)
		}
	}
}

func TestGlyphCacheDoesNotStoreFailures(t *testing.T) {
	raster := newFakeRaster(8, 16)
	raster.fail["z"] = true
	cache := NewGlyphCache(raster, 0)
	if _, err := cache.Get("z", white); err == nil {
		t.Fatalf("expected rasterize error")
	}
	if cache.Len() != 0 {
		t.Fatalf("failed glyph should not be cached")
	}
}
