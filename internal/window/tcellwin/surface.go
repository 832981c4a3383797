package tcellwin

import (
	"image"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelvim/internal/window"
)

// glyph is one grapheme cluster and its foreground.
type glyph struct {
	main  rune
	comb  []rune
	fg    tcell.Color
	width int
}

func (g *glyph) Size() (int, int) { return g.width, 1 }

type rasterizer struct{}

func (rasterizer) CellSize() (int, int) { return 1, 1 }

// Rasterize keeps the first grapheme cluster of text.
func (rasterizer) Rasterize(text string, fg color.RGBA) (window.Texture, error) {
	cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	runes := []rune(cluster)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	if width < 1 {
		width = max(1, runewidth.StringWidth(cluster))
	}
	return &glyph{main: runes[0], comb: runes[1:], fg: toColor(fg), width: width}, nil
}

// Surface maps drawing calls onto terminal cells.
type Surface struct {
	screen tcell.Screen
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Surface) Clear(c color.RGBA) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

// FillRect recolors the background of every cell in r, keeping content.
func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	w, h := s.screen.Size()
	r = r.Intersect(image.Rect(0, 0, w, h))
	bg := toColor(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mainc, combc, style, _ := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y, mainc, combc, style.Background(bg))
		}
	}
}

// Blit writes a glyph at dst.Min over the existing background.
func (s *Surface) Blit(t window.Texture, dst image.Rectangle) {
	g, ok := t.(*glyph)
	if !ok {
		log.Printf("tcellwin: cannot blit texture of type %T", t)
		return
	}
	_, _, style, _ := s.screen.GetContent(dst.Min.X, dst.Min.Y)
	s.screen.SetContent(dst.Min.X, dst.Min.Y, g.main, g.comb, style.Foreground(g.fg))
}

func (s *Surface) Present() error {
	s.screen.Show()
	return nil
}

// Resize is a no-op; the terminal owns its size.
func (s *Surface) Resize(int, int) {}

func (s *Surface) ShowCursor(col, row int, shape window.CursorShape) {
	switch shape {
	case window.CursorBlock:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	case window.CursorUnderline:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	default:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	}
	s.screen.ShowCursor(col, row)
}

func (s *Surface) HideCursor() {
	s.screen.HideCursor()
}

var (
	_ window.Surface      = (*Surface)(nil)
	_ window.CursorDrawer = (*Surface)(nil)
)
