// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package protocol

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func arr(vals ...interface{}) []interface{} { return vals }

func batch(updates ...[]interface{}) [][]interface{} { return updates }

func newTestDecoder(logs *[]string) *Decoder {
	return NewDecoder(func(format string, args ...interface{}) {
		if logs != nil {
			*logs = append(*logs, fmt.Sprintf(format, args...))
		}
	})
}

func TestDecodeResizeLineFlush(t *testing.T) {
	d := newTestDecoder(nil)
	cmds, err := d.Decode(batch(
		arr("grid_resize", arr(int64(1), int64(10), int64(3))),
		arr("grid_line", arr(int64(1), int64(0), int64(0), arr(arr("H", int64(5), int64(1)), arr("i", int64(5), int64(1))))),
		arr("flush", arr()),
	))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Command{
		GridResize{Grid: 1, Cols: 10, Rows: 3},
		GridLine{Lines: []LineEntry{{Grid: 1, Row: 0, Col: 0, Cells: []CellRun{
			{Text: "H", Highlight: 5, Repeat: 1},
			{Text: "i", Highlight: 5, Repeat: 1},
		}}}},
		Flush{},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("commands mismatch\n got %#v\nwant %#v", cmds, want)
	}
}

func TestDecodeHighlightCarryForward(t *testing.T) {
	tests := []struct {
		name  string
		cells []interface{}
		want  []CellRun
	}{
		{
			name:  "absent highlight reuses previous run",
			cells: arr(arr("a", int64(7)), arr("b"), arr("c", int64(-1), int64(3))),
			want: []CellRun{
				{Text: "a", Highlight: 7, Repeat: 1},
				{Text: "b", Highlight: 7, Repeat: 1},
				{Text: "c", Highlight: 7, Repeat: 3},
			},
		},
		{
			name:  "first run without highlight stays unset",
			cells: arr(arr("x"), arr("y", int64(2)), arr("z")),
			want: []CellRun{
				{Text: "x", Highlight: -1, Repeat: 1},
				{Text: "y", Highlight: 2, Repeat: 1},
				{Text: "z", Highlight: 2, Repeat: 1},
			},
		},
		{
			name:  "explicit highlight zero is kept",
			cells: arr(arr("a", int64(4)), arr("b", int64(0)), arr("c")),
			want: []CellRun{
				{Text: "a", Highlight: 4, Repeat: 1},
				{Text: "b", Highlight: 0, Repeat: 1},
				{Text: "c", Highlight: 0, Repeat: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(nil)
			cmds, err := d.Decode(batch(arr("grid_line", arr(int64(1), int64(2), int64(3), tt.cells))))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			line := cmds[0].(GridLine)
			if !reflect.DeepEqual(line.Lines[0].Cells, tt.want) {
				t.Fatalf("cells = %#v, want %#v", line.Lines[0].Cells, tt.want)
			}
		})
	}
}

func TestDecodeCarryForwardAcrossEntriesAndBatches(t *testing.T) {
	d := newTestDecoder(nil)
	cmds, err := d.Decode(batch(arr("grid_line",
		arr(int64(1), int64(0), int64(0), arr(arr("a", int64(9)))),
		arr(int64(1), int64(1), int64(0), arr(arr("b"))),
	)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := cmds[0].(GridLine).Lines[1].Cells[0].Highlight; got != 9 {
		t.Fatalf("second entry highlight = %d, want 9", got)
	}

	cmds, err = d.Decode(batch(arr("grid_line", arr(int64(1), int64(0), int64(0), arr(arr("c"))))))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := cmds[0].(GridLine).Lines[0].Cells[0].Highlight; got != -1 {
		t.Fatalf("highlight after new batch = %d, want -1", got)
	}
}

func TestDecodeAcceptsIntegerKinds(t *testing.T) {
	d := newTestDecoder(nil)
	cmds, err := d.Decode(batch(
		arr("grid_cursor_goto", arr(uint64(1), int8(4), uint32(7))),
		arr("grid_scroll", arr(1, 0, 10, 0, 80, -2, 0)),
	))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := cmds[0]; got != (GridCursorGoto{Grid: 1, Row: 4, Col: 7}) {
		t.Fatalf("cursor = %#v", got)
	}
	if got := cmds[1]; got != (GridScroll{Grid: 1, Top: 0, Bot: 10, Left: 0, Right: 80, Rows: -2}) {
		t.Fatalf("scroll = %#v", got)
	}
}

func TestDecodeHighlightDefinition(t *testing.T) {
	d := newTestDecoder(nil)
	cmds, err := d.Decode(batch(arr("hl_attr_define",
		arr(int64(5), map[string]interface{}{"foreground": int64(0xff0000), "bold": true, "reverse": true, "url": "x"}, map[string]interface{}{}, arr()),
		arr(int64(6), map[interface{}]interface{}{"background": uint64(0x00ff00), "undercurl": true, "special": int64(0x0000ff)}),
	)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	first := cmds[0].(HighlightAttrDefine)
	if first.ID != 5 || first.Attrs.Foreground != 0xff0000 || !first.Attrs.Bold || !first.Attrs.Reverse {
		t.Fatalf("unexpected first definition %#v", first)
	}
	if first.Attrs.Background != NoColor || first.Attrs.Special != NoColor {
		t.Fatalf("unset colors should inherit, got %#v", first.Attrs)
	}
	second := cmds[1].(HighlightAttrDefine)
	if second.Attrs.Background != 0x00ff00 || !second.Attrs.Undercurl || second.Attrs.Special != 0x0000ff {
		t.Fatalf("unexpected second definition %#v", second)
	}
}

func TestDecodeSideChannelEvents(t *testing.T) {
	d := newTestDecoder(nil)
	cmds, err := d.Decode(batch(
		arr("default_colors_set", arr(int64(0xffffff), int64(0x101010), int64(-1), int64(0), int64(0))),
		arr("mode_info_set", arr(true, arr(
			map[string]interface{}{"name": "normal", "short_name": "n", "cursor_shape": "block", "cell_percentage": int64(0)},
			map[string]interface{}{"name": "insert", "cursor_shape": "vertical", "cell_percentage": int64(25), "attr_id": int64(3)},
		))),
		arr("mode_change", arr("insert", int64(1))),
		arr("set_title", arr("main.go - NVIM")),
		arr("mouse_off", arr()),
		arr("busy_start", arr()),
		arr("visual_bell", arr()),
	))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Command{
		DefaultColorsSet{Foreground: 0xffffff, Background: 0x101010, Special: NoColor},
		ModeInfoSet{CursorStyleEnabled: true, Modes: []ModeInfo{
			{Name: "normal", ShortName: "n", CursorShape: CursorBlock},
			{Name: "insert", CursorShape: CursorVertical, CellPercentage: 25, AttrID: 3},
		}},
		ModeChange{Mode: ModeInsert, Name: "insert", Index: 1},
		SetTitle{Title: "main.go - NVIM"},
		MouseEnabled{Enabled: false},
		Busy{Busy: true},
		Bell{Visual: true},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("commands mismatch\n got %#v\nwant %#v", cmds, want)
	}
}

func TestDecodeUnknownEventsAreIgnored(t *testing.T) {
	var logs []string
	d := newTestDecoder(&logs)
	for i := 0; i < 3; i++ {
		cmds, err := d.Decode(batch(
			arr("msg_show", arr("x")),
			arr("option_set", arr("guifont", "")),
			arr("flush", arr()),
		))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(cmds) != 1 {
			t.Fatalf("expected only flush, got %#v", cmds)
		}
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log line for the unknown event, got %q", logs)
	}
}

func TestDecodeMalformedAbandonsBatch(t *testing.T) {
	tests := []struct {
		name    string
		updates [][]interface{}
	}{
		{"empty update", batch(arr())},
		{"name not a string", batch(arr(int64(3), arr()))},
		{"missing resize field", batch(arr("grid_resize", arr(int64(1), int64(80))))},
		{"mistyped cursor row", batch(arr("grid_cursor_goto", arr(int64(1), "row", int64(0))))},
		{"tuple not an array", batch(arr("grid_clear", int64(1)))},
		{"cells not an array", batch(arr("grid_line", arr(int64(1), int64(0), int64(0), "cells")))},
		{"cell text mistyped", batch(arr("grid_line", arr(int64(1), int64(0), int64(0), arr(arr(int64(65))))))},
		{"negative repeat", batch(arr("grid_line", arr(int64(1), int64(0), int64(0), arr(arr("a", int64(1), int64(-2))))))},
		{"highlight map mistyped", batch(arr("hl_attr_define", arr(int64(1), arr())))},
		{"highlight attribute mistyped", batch(arr("hl_attr_define", arr(int64(1), map[string]interface{}{"bold": "yes"})))},
		{"mode info entry mistyped", batch(arr("mode_info_set", arr(true, arr("block"))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(nil)
			good := arr("grid_resize", arr(int64(1), int64(2), int64(2)))
			cmds, err := d.Decode(append([][]interface{}{good}, tt.updates...))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if cmds != nil {
				t.Fatalf("expected abandoned batch, got %#v", cmds)
			}
		})
	}
}

func TestEscapeText(t *testing.T) {
	tests := map[string]string{
		"abc":   "abc",
		"<":     "<lt>",
		"a<b<c": "a<lt>b<lt>c",
		"":      "",
	}
	for in, want := range tests {
		if got := EscapeText(in); got != want {
			t.Errorf("EscapeText(%q) = %q, want %q", in, got, want)
		}
	}
}
