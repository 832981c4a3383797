// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/input_handler.go
// Summary: Translates window events into editor input requests.
// Usage: One InputTranslator per loop; feed every window event to Translate and send the results.

package clientruntime

import (
	"strings"

	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/protocol"
)

var keyNames = map[window.Key]string{
	window.KeyEscape:       "Esc",
	window.KeyEnter:        "CR",
	window.KeyTab:          "Tab",
	window.KeyBackspace:    "BS",
	window.KeyDelete:       "Del",
	window.KeyInsert:       "Insert",
	window.KeyArrowUp:      "Up",
	window.KeyArrowDown:    "Down",
	window.KeyLeft:         "Left",
	window.KeyRight:        "Right",
	window.KeyHome:         "Home",
	window.KeyEnd:          "End",
	window.KeyPageUp:       "PageUp",
	window.KeyPageDown:     "PageDown",
	window.KeySpace:        "Space",
	window.KeyF1:           "F1",
	window.KeyF2:           "F2",
	window.KeyF3:           "F3",
	window.KeyF4:           "F4",
	window.KeyF5:           "F5",
	window.KeyF6:           "F6",
	window.KeyF7:           "F7",
	window.KeyF8:           "F8",
	window.KeyF9:           "F9",
	window.KeyF10:          "F10",
	window.KeyF11:          "F11",
	window.KeyF12:          "F12",
	window.KeyMinus:        "-",
	window.KeyEqual:        "=",
	window.KeyLeftBracket:  "[",
	window.KeyRightBracket: "]",
	window.KeyBackslash:    "Bslash",
	window.KeySemicolon:    ";",
	window.KeyApostrophe:   "'",
	window.KeyComma:        ",",
	window.KeyPeriod:       ".",
	window.KeySlash:        "/",
	window.KeyBackquote:    "`",
}

func init() {
	for k := window.KeyA; k <= window.KeyZ; k++ {
		keyNames[k] = string(rune('A' + (k - window.KeyA)))
	}
	for k := window.Key0; k <= window.Key9; k++ {
		keyNames[k] = string(rune('0' + (k - window.Key0)))
	}
}

// modifierPrefix renders mods in the fixed M-, C-, S- order.
func modifierPrefix(mods window.Mod) string {
	var sb strings.Builder
	if mods&window.ModAlt != 0 {
		sb.WriteString("M-")
	}
	if mods&window.ModCtrl != 0 {
		sb.WriteString("C-")
	}
	if mods&window.ModShift != 0 {
		sb.WriteString("S-")
	}
	return sb.String()
}

// chord formats a key as "<M-C-S-Name>". A letter chorded with alt alone is
// sent lowercase, since the editor reads "<M-A>" as alt+shift.
func chord(k window.Key, name string, mods window.Mod) string {
	if k >= window.KeyA && k <= window.KeyZ && mods&(window.ModAlt|window.ModCtrl|window.ModShift) == window.ModAlt {
		name = strings.ToLower(name)
	}
	return "<" + modifierPrefix(mods) + name + ">"
}

const chordMods = window.ModCtrl | window.ModAlt

// InputTranslator keeps the little state input translation needs: held
// modifiers, the held mouse button and the last grid size requested.
type InputTranslator struct {
	cellW, cellH int
	mods         window.Mod
	mouseEnabled bool

	button           window.MouseButtonID
	lastRow, lastCol int

	cols, rows int
}

// NewInputTranslator uses the cell box to map pixels to cells. cols and rows
// are the size the editor was attached with.
func NewInputTranslator(cellW, cellH, cols, rows int) *InputTranslator {
	return &InputTranslator{
		cellW:        max(cellW, 1),
		cellH:        max(cellH, 1),
		mouseEnabled: true,
		cols:         cols,
		rows:         rows,
	}
}

// SetMouseEnabled suppresses mouse requests while the editor has mouse
// support switched off.
func (t *InputTranslator) SetMouseEnabled(enabled bool) {
	t.mouseEnabled = enabled
	if !enabled {
		t.button = 0
	}
}

// Mods returns the currently held modifiers.
func (t *InputTranslator) Mods() window.Mod { return t.mods }

// GridSize returns the last size requested from the editor.
func (t *InputTranslator) GridSize() (cols, rows int) { return t.cols, t.rows }

// Translate maps one window event to zero or more requests.
func (t *InputTranslator) Translate(ev window.Event) []protocol.ClientCommand {
	switch e := ev.(type) {
	case window.KeyDown:
		return t.keyDown(e)
	case window.KeyUp:
		t.mods = e.Mods
	case window.TextInput:
		if t.mods&chordMods != 0 || e.Text == "" {
			return nil
		}
		return []protocol.ClientCommand{protocol.InputText{Keys: protocol.EscapeText(e.Text)}}
	case window.MouseButton:
		return t.mouseButton(e)
	case window.MouseMotion:
		return t.mouseMotion(e)
	case window.MouseWheel:
		return t.mouseWheel(e)
	case window.Resized:
		return t.resize(e.Width, e.Height)
	}
	return nil
}

func (t *InputTranslator) keyDown(e window.KeyDown) []protocol.ClientCommand {
	t.mods = e.Mods
	if e.Key.IsModifier() {
		return nil
	}
	name, ok := keyNames[e.Key]
	if !ok {
		return nil
	}
	if e.Key.IsPrintable() && t.mods&chordMods == 0 {
		return nil
	}
	return []protocol.ClientCommand{protocol.InputText{Keys: chord(e.Key, name, t.mods)}}
}

func (t *InputTranslator) cell(x, y int) (row, col int) {
	return y / t.cellH, x / t.cellW
}

func buttonName(b window.MouseButtonID) (string, bool) {
	switch b {
	case window.ButtonLeft:
		return "left", true
	case window.ButtonRight:
		return "right", true
	case window.ButtonMiddle:
		return "middle", true
	}
	return "", false
}

func (t *InputTranslator) mouse(button, action string, mods window.Mod, row, col int) protocol.InputMouse {
	return protocol.InputMouse{
		Button:   button,
		Action:   action,
		Modifier: modifierPrefix(mods),
		Grid:     0,
		Row:      row,
		Col:      col,
	}
}

func (t *InputTranslator) mouseButton(e window.MouseButton) []protocol.ClientCommand {
	name, ok := buttonName(e.Button)
	if !ok || !t.mouseEnabled {
		return nil
	}
	row, col := t.cell(e.X, e.Y)
	if !e.Pressed {
		if t.button == e.Button {
			t.button = 0
		}
		return []protocol.ClientCommand{t.mouse(name, "release", e.Mods, row, col)}
	}
	t.button = e.Button
	t.lastRow, t.lastCol = row, col
	clicks := max(e.Clicks, 1)
	out := make([]protocol.ClientCommand, 0, clicks)
	for i := 0; i < clicks; i++ {
		out = append(out, t.mouse(name, "press", e.Mods, row, col))
	}
	return out
}

func (t *InputTranslator) mouseMotion(e window.MouseMotion) []protocol.ClientCommand {
	if !t.mouseEnabled || t.button == 0 {
		return nil
	}
	row, col := t.cell(e.X, e.Y)
	if row == t.lastRow && col == t.lastCol {
		return nil
	}
	t.lastRow, t.lastCol = row, col
	name, _ := buttonName(t.button)
	return []protocol.ClientCommand{t.mouse(name, "drag", e.Mods, row, col)}
}

func (t *InputTranslator) mouseWheel(e window.MouseWheel) []protocol.ClientCommand {
	if !t.mouseEnabled {
		return nil
	}
	row, col := t.cell(e.X, e.Y)
	var out []protocol.ClientCommand
	switch {
	case e.DY > 0:
		out = append(out, t.mouse("wheel", "up", e.Mods, row, col))
	case e.DY < 0:
		out = append(out, t.mouse("wheel", "down", e.Mods, row, col))
	}
	switch {
	case e.DX > 0:
		out = append(out, t.mouse("wheel", "right", e.Mods, row, col))
	case e.DX < 0:
		out = append(out, t.mouse("wheel", "left", e.Mods, row, col))
	}
	return out
}

// resize requests a new grid size when the window size maps to a different
// cell count.
func (t *InputTranslator) resize(width, height int) []protocol.ClientCommand {
	cols, rows := width/t.cellW, height/t.cellH
	if cols < 1 || rows < 1 || (cols == t.cols && rows == t.rows) {
		return nil
	}
	t.cols, t.rows = cols, rows
	return []protocol.ClientCommand{protocol.TryResize{Cols: cols, Rows: rows}}
}
