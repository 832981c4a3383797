// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: protocol/decode.go
// Summary: Decodes redraw notification batches into typed commands.
// Usage: The editor bridge feeds every "redraw" notification through Decoder.Decode.

package protocol

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// ErrMalformed is wrapped by every decode error caused by a missing or
// mistyped field.
var ErrMalformed = errors.New("protocol: malformed redraw event")

// ignoredEvents are known redraw events with no effect on a single-grid UI.
var ignoredEvents = map[string]struct{}{
	"option_set":           {},
	"hl_group_set":         {},
	"grid_destroy":         {},
	"win_viewport":         {},
	"win_viewport_margins": {},
	"set_icon":             {},
	"chdir":                {},
	"update_menu":          {},
	"suspend":              {},
	"msg_set_pos":          {},
}

// Decoder turns redraw batches into commands. It is not safe for concurrent
// use; the bridge owns one per connection.
type Decoder struct {
	Logf func(format string, args ...interface{})

	lastHighlight int
	reported      map[string]struct{}
}

// NewDecoder returns a decoder logging through logf (log.Printf when nil).
func NewDecoder(logf func(format string, args ...interface{})) *Decoder {
	if logf == nil {
		logf = log.Printf
	}
	return &Decoder{Logf: logf, reported: make(map[string]struct{})}
}

// Decode converts one redraw batch. Each update is [name, args...] where every
// args element is one argument tuple. Commands keep batch order. Any malformed
// event abandons the whole batch: the returned slice is nil and the error
// wraps ErrMalformed.
func (d *Decoder) Decode(updates [][]interface{}) ([]Command, error) {
	d.lastHighlight = -1
	out := make([]Command, 0, len(updates))
	for i, update := range updates {
		if len(update) == 0 {
			return nil, fmt.Errorf("%w: update %d is empty", ErrMalformed, i)
		}
		name, ok := asString(update[0])
		if !ok {
			return nil, fmt.Errorf("%w: update %d: event name is %T", ErrMalformed, i, update[0])
		}
		var err error
		out, err = d.decodeEvent(name, update[1:], out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *Decoder) decodeEvent(name string, args []interface{}, out []Command) ([]Command, error) {
	switch name {
	case "grid_resize":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return GridResize{Grid: t.int(0), Cols: t.int(1), Rows: t.int(2)}
		})
	case "grid_clear":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return GridClear{Grid: t.int(0)}
		})
	case "grid_cursor_goto":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return GridCursorGoto{Grid: t.int(0), Row: t.int(1), Col: t.int(2)}
		})
	case "grid_scroll":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return GridScroll{
				Grid:  t.int(0),
				Top:   t.int(1),
				Bot:   t.int(2),
				Left:  t.int(3),
				Right: t.int(4),
				Rows:  t.int(5),
				Cols:  t.int(6),
			}
		})
	case "grid_line":
		line, err := d.decodeGridLine(name, args)
		if err != nil {
			return nil, err
		}
		return append(out, line), nil
	case "hl_attr_define":
		return eachTuple(name, args, out, func(t *tuple) Command {
			id := t.int(0)
			attrs := t.mapAt(1)
			if t.err != nil {
				return nil
			}
			hl, err := decodeHighlight(attrs)
			if err != nil {
				t.fail(1, err.Error())
			}
			return HighlightAttrDefine{ID: id, Attrs: hl}
		})
	case "default_colors_set":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return DefaultColorsSet{
				Foreground: Color(t.int(0)),
				Background: Color(t.int(1)),
				Special:    Color(t.int(2)),
			}
		})
	case "mode_change":
		return eachTuple(name, args, out, func(t *tuple) Command {
			mode := t.str(0)
			return ModeChange{Mode: ModeFromName(mode), Name: mode, Index: t.int(1)}
		})
	case "mode_info_set":
		return eachTuple(name, args, out, func(t *tuple) Command {
			enabled := t.bool(0)
			entries := t.array(1)
			if t.err != nil {
				return nil
			}
			set := ModeInfoSet{CursorStyleEnabled: enabled, Modes: make([]ModeInfo, 0, len(entries))}
			for i, raw := range entries {
				m, ok := asMap(raw)
				if !ok {
					t.fail(1, fmt.Sprintf("mode %d is %T", i, raw))
					return nil
				}
				info, err := decodeModeInfo(m)
				if err != nil {
					t.fail(1, fmt.Sprintf("mode %d: %v", i, err))
					return nil
				}
				set.Modes = append(set.Modes, info)
			}
			return set
		})
	case "set_title":
		return eachTuple(name, args, out, func(t *tuple) Command {
			return SetTitle{Title: t.str(0)}
		})
	case "bell":
		return append(out, Bell{}), nil
	case "visual_bell":
		return append(out, Bell{Visual: true}), nil
	case "mouse_on":
		return append(out, MouseEnabled{Enabled: true}), nil
	case "mouse_off":
		return append(out, MouseEnabled{Enabled: false}), nil
	case "busy_start":
		return append(out, Busy{Busy: true}), nil
	case "busy_stop":
		return append(out, Busy{Busy: false}), nil
	case "flush":
		return append(out, Flush{}), nil
	}
	if _, ok := ignoredEvents[name]; ok {
		return out, nil
	}
	if _, seen := d.reported[name]; !seen {
		d.reported[name] = struct{}{}
		d.Logf("ignoring unknown redraw event %q", name)
	}
	return out, nil
}

func (d *Decoder) decodeGridLine(name string, args []interface{}) (GridLine, error) {
	line := GridLine{Lines: make([]LineEntry, 0, len(args))}
	for i, raw := range args {
		t, err := newTuple(name, i, raw)
		if err != nil {
			return GridLine{}, err
		}
		entry := LineEntry{Grid: t.int(0), Row: t.int(1), Col: t.int(2)}
		cells := t.array(3)
		if t.err != nil {
			return GridLine{}, t.err
		}
		entry.Cells = make([]CellRun, 0, len(cells))
		for j, rawCell := range cells {
			run, err := d.decodeCell(rawCell)
			if err != nil {
				return GridLine{}, fmt.Errorf("%w: %s[%d] cell %d: %v", ErrMalformed, name, i, j, err)
			}
			entry.Cells = append(entry.Cells, run)
		}
		line.Lines = append(line.Lines, entry)
	}
	return line, nil
}

// decodeCell reads [text, hl_id?, repeat?]. An absent or -1 highlight reuses
// the most recent one seen in this batch.
func (d *Decoder) decodeCell(raw interface{}) (CellRun, error) {
	vals, ok := asArray(raw)
	if !ok {
		return CellRun{}, fmt.Errorf("expected array, got %T", raw)
	}
	if len(vals) == 0 {
		return CellRun{}, errors.New("empty cell")
	}
	text, ok := asString(vals[0])
	if !ok {
		return CellRun{}, fmt.Errorf("text is %T", vals[0])
	}
	hl := -1
	if len(vals) >= 2 {
		if hl, ok = asInt(vals[1]); !ok {
			return CellRun{}, fmt.Errorf("highlight is %T", vals[1])
		}
	}
	if hl == -1 {
		hl = d.lastHighlight
	} else {
		d.lastHighlight = hl
	}
	repeat := 1
	if len(vals) >= 3 {
		if repeat, ok = asInt(vals[2]); !ok {
			return CellRun{}, fmt.Errorf("repeat is %T", vals[2])
		}
		if repeat < 0 {
			return CellRun{}, fmt.Errorf("negative repeat %d", repeat)
		}
	}
	return CellRun{Text: text, Highlight: hl, Repeat: repeat}, nil
}

func decodeHighlight(attrs map[string]interface{}) (Highlight, error) {
	hl := DefaultHighlight()
	for key, value := range attrs {
		var ok bool
		switch key {
		case "foreground":
			var v int
			v, ok = asInt(value)
			hl.Foreground = Color(v)
		case "background":
			var v int
			v, ok = asInt(value)
			hl.Background = Color(v)
		case "special":
			var v int
			v, ok = asInt(value)
			hl.Special = Color(v)
		case "blend":
			hl.Blend, ok = asInt(value)
		case "bold":
			hl.Bold, ok = value.(bool)
		case "italic":
			hl.Italic, ok = value.(bool)
		case "underline":
			hl.Underline, ok = value.(bool)
		case "undercurl":
			hl.Undercurl, ok = value.(bool)
		case "strikethrough":
			hl.Strikethrough, ok = value.(bool)
		case "reverse":
			hl.Reverse, ok = value.(bool)
		default:
			continue
		}
		if !ok {
			return Highlight{}, fmt.Errorf("attribute %q is %T", key, value)
		}
	}
	return hl, nil
}

func decodeModeInfo(m map[string]interface{}) (ModeInfo, error) {
	var info ModeInfo
	for key, value := range m {
		var ok bool
		switch key {
		case "name":
			info.Name, ok = asString(value)
		case "short_name":
			info.ShortName, ok = asString(value)
		case "cursor_shape":
			var shape string
			shape, ok = asString(value)
			switch shape {
			case "block":
				info.CursorShape = CursorBlock
			case "horizontal":
				info.CursorShape = CursorHorizontal
			case "vertical":
				info.CursorShape = CursorVertical
			}
		case "cell_percentage":
			info.CellPercentage, ok = asInt(value)
		case "attr_id":
			info.AttrID, ok = asInt(value)
		case "blinkwait":
			info.BlinkWait, ok = asInt(value)
		case "blinkon":
			info.BlinkOn, ok = asInt(value)
		case "blinkoff":
			info.BlinkOff, ok = asInt(value)
		default:
			continue
		}
		if !ok {
			return ModeInfo{}, fmt.Errorf("field %q is %T", key, value)
		}
	}
	return info, nil
}

func eachTuple(name string, args []interface{}, out []Command, build func(t *tuple) Command) ([]Command, error) {
	for i, raw := range args {
		t, err := newTuple(name, i, raw)
		if err != nil {
			return nil, err
		}
		cmd := build(t)
		if t.err != nil {
			return nil, t.err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// tuple reads positional arguments, keeping the first error.
type tuple struct {
	event string
	index int
	vals  []interface{}
	err   error
}

func newTuple(event string, index int, raw interface{}) (*tuple, error) {
	vals, ok := asArray(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %s[%d]: expected array, got %T", ErrMalformed, event, index, raw)
	}
	return &tuple{event: event, index: index, vals: vals}, nil
}

func (t *tuple) fail(pos int, msg string) {
	if t.err == nil {
		t.err = fmt.Errorf("%w: %s[%d] arg %d: %s", ErrMalformed, t.event, t.index, pos, msg)
	}
}

func (t *tuple) at(pos int) (interface{}, bool) {
	if t.err != nil {
		return nil, false
	}
	if pos >= len(t.vals) {
		t.fail(pos, "missing")
		return nil, false
	}
	return t.vals[pos], true
}

func (t *tuple) int(pos int) int {
	v, ok := t.at(pos)
	if !ok {
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		t.fail(pos, fmt.Sprintf("expected integer, got %T", v))
	}
	return n
}

func (t *tuple) str(pos int) string {
	v, ok := t.at(pos)
	if !ok {
		return ""
	}
	s, ok := asString(v)
	if !ok {
		t.fail(pos, fmt.Sprintf("expected string, got %T", v))
	}
	return s
}

func (t *tuple) bool(pos int) bool {
	v, ok := t.at(pos)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		t.fail(pos, fmt.Sprintf("expected bool, got %T", v))
	}
	return b
}

func (t *tuple) array(pos int) []interface{} {
	v, ok := t.at(pos)
	if !ok {
		return nil
	}
	arr, ok := asArray(v)
	if !ok {
		t.fail(pos, fmt.Sprintf("expected array, got %T", v))
	}
	return arr
}

func (t *tuple) mapAt(pos int) map[string]interface{} {
	v, ok := t.at(pos)
	if !ok {
		return nil
	}
	m, ok := asMap(v)
	if !ok {
		t.fail(pos, fmt.Sprintf("expected map, got %T", v))
	}
	return m
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func asArray(v interface{}) ([]interface{}, bool) {
	arr, ok := v.([]interface{})
	return arr, ok
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := asString(k)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}
