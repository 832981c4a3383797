package client

import "github.com/framegrace/texelvim/protocol"

// HighlightTable maps highlight ids to styles. Entries are only ever added
// or replaced.
type HighlightTable struct {
	entries map[int]protocol.Highlight
}

// NewHighlightTable returns an empty table.
func NewHighlightTable() *HighlightTable {
	return &HighlightTable{entries: make(map[int]protocol.Highlight)}
}

// Define inserts or replaces the entry for id.
func (t *HighlightTable) Define(id int, hl protocol.Highlight) {
	t.entries[id] = hl
}

// Lookup returns the entry for id. Id 0 always resolves, to an all-inherit
// highlight when never defined.
func (t *HighlightTable) Lookup(id int) (protocol.Highlight, bool) {
	hl, ok := t.entries[id]
	if !ok && id == 0 {
		return protocol.DefaultHighlight(), true
	}
	return hl, ok
}

// Len returns the number of explicitly defined entries.
func (t *HighlightTable) Len() int {
	return len(t.entries)
}

// DefaultColors is the fallback color triple.
type DefaultColors struct {
	Foreground protocol.Color
	Background protocol.Color
	Special    protocol.Color
}

// Style is a highlight resolved against the default colors. Colors are
// always valid once the defaults are valid.
type Style struct {
	Foreground protocol.Color
	Background protocol.Color
	Special    protocol.Color
	Attrs      protocol.Highlight
}

// resolve applies the inherit rules: a known highlight contributes its set
// colors; an unknown id falls back to the defaults with no background
// override. Reverse swaps the resolved foreground and background.
func (t *HighlightTable) resolve(id int, defaults DefaultColors) Style {
	style := Style{
		Foreground: defaults.Foreground,
		Background: defaults.Background,
		Special:    defaults.Special,
	}
	hl, ok := t.Lookup(id)
	if !ok {
		style.Attrs = protocol.DefaultHighlight()
		return style
	}
	style.Attrs = hl
	if hl.Foreground.Valid() {
		style.Foreground = hl.Foreground
	}
	if hl.Background.Valid() {
		style.Background = hl.Background
	}
	if hl.Special.Valid() {
		style.Special = hl.Special
	}
	if hl.Reverse {
		style.Foreground, style.Background = style.Background, style.Foreground
	}
	return style
}
