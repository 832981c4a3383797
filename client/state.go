// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: client/state.go
// Summary: Grid state owned by the presentation loop and the apply rules for redraw commands.
// Usage: NewState(defaults) then Apply each decoded command in order; read through accessors.

package client

import (
	"errors"
	"fmt"

	"github.com/framegrace/texelvim/protocol"
)

// ErrOutOfBounds reports a write that addressed cells outside the grid.
// The in-bounds part of the write is still applied.
var ErrOutOfBounds = errors.New("client: write out of bounds")

// Cursor is a grid position.
type Cursor struct {
	Row int
	Col int
}

// State is the mirror of the editor's grid. It is not safe for concurrent
// use; the presentation loop is its only writer and reader.
type State struct {
	grid       *Grid
	highlights *HighlightTable
	defaults   DefaultColors

	cursor Cursor

	mode         protocol.Mode
	modeIndex    int
	modeInfo     []protocol.ModeInfo
	cursorStyled bool

	title        string
	mouseEnabled bool
	busy         bool
}

// NewState returns an empty 0x0 state using defaults until the editor sends
// its own default colors.
func NewState(defaults DefaultColors) *State {
	return &State{
		grid:         NewGrid(0, 0),
		highlights:   NewHighlightTable(),
		defaults:     defaults,
		modeIndex:    -1,
		mouseEnabled: true,
	}
}

// Apply mutates the state for one command. Commands that carry no grid
// state (Flush, Bell, Close) are accepted and ignored.
func (s *State) Apply(cmd protocol.Command) error {
	switch c := cmd.(type) {
	case protocol.GridResize:
		s.grid.Reset(c.Cols, c.Rows)
	case protocol.GridClear:
		s.grid.Clear()
	case protocol.GridLine:
		var dropped int
		for _, entry := range c.Lines {
			if s.grid.writeLine(entry) {
				dropped++
			}
		}
		if dropped > 0 {
			return fmt.Errorf("grid_line: %d entries exceed %dx%d: %w", dropped, s.grid.cols, s.grid.rows, ErrOutOfBounds)
		}
	case protocol.GridCursorGoto:
		s.cursor = Cursor{Row: c.Row, Col: c.Col}
	case protocol.GridScroll:
		if s.grid.scroll(c.Top, c.Bot, c.Left, c.Right, c.Rows) {
			return fmt.Errorf("grid_scroll [%d,%d)x[%d,%d) clamped to %dx%d: %w",
				c.Top, c.Bot, c.Left, c.Right, s.grid.cols, s.grid.rows, ErrOutOfBounds)
		}
	case protocol.HighlightAttrDefine:
		s.highlights.Define(c.ID, c.Attrs)
	case protocol.DefaultColorsSet:
		if c.Foreground.Valid() {
			s.defaults.Foreground = c.Foreground
		}
		if c.Background.Valid() {
			s.defaults.Background = c.Background
		}
		if c.Special.Valid() {
			s.defaults.Special = c.Special
		}
	case protocol.ModeChange:
		s.mode = c.Mode
		s.modeIndex = c.Index
	case protocol.ModeInfoSet:
		s.cursorStyled = c.CursorStyleEnabled
		s.modeInfo = append(s.modeInfo[:0], c.Modes...)
	case protocol.SetTitle:
		s.title = c.Title
	case protocol.MouseEnabled:
		s.mouseEnabled = c.Enabled
	case protocol.Busy:
		s.busy = c.Busy
	case protocol.Flush, protocol.Bell, protocol.Close:
	default:
		return fmt.Errorf("client: unsupported command %T", cmd)
	}
	return nil
}

// Grid exposes the cell grid for reading.
func (s *State) Grid() *Grid { return s.grid }

// Highlights exposes the highlight table for reading.
func (s *State) Highlights() *HighlightTable { return s.highlights }

// DefaultColors returns the current default colors.
func (s *State) DefaultColors() DefaultColors { return s.defaults }

// Resolve returns the effective style of a highlight id.
func (s *State) Resolve(id int) Style {
	return s.highlights.resolve(id, s.defaults)
}

// Cursor returns the cursor clamped into the grid. The second result is
// false when the grid is empty.
func (s *State) Cursor() (Cursor, bool) {
	cols, rows := s.grid.Size()
	if cols == 0 || rows == 0 {
		return Cursor{}, false
	}
	c := s.cursor
	c.Row = clamp(c.Row, 0, rows-1)
	c.Col = clamp(c.Col, 0, cols-1)
	return c, true
}

// RawCursor returns the cursor exactly as last sent by the editor.
func (s *State) RawCursor() Cursor { return s.cursor }

// Mode returns the current coarse mode.
func (s *State) Mode() protocol.Mode { return s.mode }

// CursorMode returns the mode info of the current mode when the editor has
// enabled cursor styling and the mode index is known.
func (s *State) CursorMode() (protocol.ModeInfo, bool) {
	if !s.cursorStyled || s.modeIndex < 0 || s.modeIndex >= len(s.modeInfo) {
		return protocol.ModeInfo{}, false
	}
	return s.modeInfo[s.modeIndex], true
}

// Title returns the last title set by the editor.
func (s *State) Title() string { return s.title }

// MouseEnabled reports whether mouse input should be forwarded.
func (s *State) MouseEnabled() bool { return s.mouseEnabled }

// Busy reports whether the editor asked to hide the cursor.
func (s *State) Busy() bool { return s.busy }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
