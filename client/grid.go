package client

import (
	"strings"

	"github.com/framegrace/texelvim/protocol"
)

// Cell is one grid position: a grapheme cluster and its highlight id.
type Cell struct {
	Text      string
	Highlight int
}

// BlankCell is the content of a freshly allocated or vacated position.
func BlankCell() Cell {
	return Cell{Text: " ", Highlight: 0}
}

// Grid is a fixed-size row-major cell array. Dimensions only change through
// Reset.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
}

// NewGrid allocates a blank grid. Negative dimensions are treated as zero.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Reset(cols, rows)
	return g
}

// Reset reallocates the grid to cols x rows blank cells.
func (g *Grid) Reset(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]Cell, cols*rows)
	g.Clear()
}

// Clear blanks every cell, keeping the dimensions.
func (g *Grid) Clear() {
	blank := BlankCell()
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// Row returns a copy of one row, or nil when out of range.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]Cell, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}

// RowText concatenates the text of one row.
func (g *Grid) RowText(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var sb strings.Builder
	for _, cell := range g.cells[row*g.cols : (row+1)*g.cols] {
		sb.WriteString(cell.Text)
	}
	return sb.String()
}

// Rows returns every row as text with trailing spaces removed.
func (g *Grid) Rows() []string {
	out := make([]string, g.rows)
	for i := range out {
		out[i] = strings.TrimRight(g.RowText(i), " ")
	}
	return out
}

// writeLine expands one run-length entry. It reports whether any part of the
// entry fell outside the grid; those writes are dropped.
func (g *Grid) writeLine(entry protocol.LineEntry) bool {
	if entry.Row < 0 || entry.Row >= g.rows || entry.Col < 0 {
		return true
	}
	base := entry.Row * g.cols
	col := entry.Col
	for _, run := range entry.Cells {
		cell := Cell{Text: run.Text, Highlight: run.Highlight}
		for i := 0; i < run.Repeat; i++ {
			if col >= g.cols {
				return true
			}
			g.cells[base+col] = cell
			col++
		}
	}
	return false
}

// scroll shifts [top,bot) x [left,right) by delta rows; positive moves
// content up. Rows moved outside the region are discarded and vacated rows
// are blanked. Iteration runs away from the destination so overlapping
// source rows are read before they are overwritten. It reports whether the
// region had to be clamped to the grid.
func (g *Grid) scroll(top, bot, left, right, delta int) bool {
	clamped := false
	clampRange := func(lo, hi, limit int) (int, int) {
		if lo < 0 {
			lo, clamped = 0, true
		}
		if hi > limit {
			hi, clamped = limit, true
		}
		return lo, hi
	}
	top, bot = clampRange(top, bot, g.rows)
	left, right = clampRange(left, right, g.cols)
	if top >= bot || left >= right || delta == 0 {
		return clamped
	}

	blank := BlankCell()
	if delta > 0 {
		for y := top; y < bot; y++ {
			for x := left; x < right; x++ {
				src := y*g.cols + x
				if dst := y - delta; dst >= top {
					g.cells[dst*g.cols+x] = g.cells[src]
				}
				g.cells[src] = blank
			}
		}
		return clamped
	}
	for y := bot - 1; y >= top; y-- {
		for x := right - 1; x >= left; x-- {
			src := y*g.cols + x
			if dst := y - delta; dst < bot {
				g.cells[dst*g.cols+x] = g.cells[src]
			}
			g.cells[src] = blank
		}
	}
	return clamped
}
