package tcellwin

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelvim/internal/window"
)

var namedKeys = map[tcell.Key]window.Key{
	tcell.KeyEscape:     window.KeyEscape,
	tcell.KeyEnter:      window.KeyEnter,
	tcell.KeyTab:        window.KeyTab,
	tcell.KeyBacktab:    window.KeyTab,
	tcell.KeyBackspace:  window.KeyBackspace,
	tcell.KeyBackspace2: window.KeyBackspace,
	tcell.KeyDelete:     window.KeyDelete,
	tcell.KeyInsert:     window.KeyInsert,
	tcell.KeyUp:         window.KeyArrowUp,
	tcell.KeyDown:       window.KeyArrowDown,
	tcell.KeyLeft:       window.KeyLeft,
	tcell.KeyRight:      window.KeyRight,
	tcell.KeyHome:       window.KeyHome,
	tcell.KeyEnd:        window.KeyEnd,
	tcell.KeyPgUp:       window.KeyPageUp,
	tcell.KeyPgDn:       window.KeyPageDown,
	tcell.KeyF1:         window.KeyF1,
	tcell.KeyF2:         window.KeyF2,
	tcell.KeyF3:         window.KeyF3,
	tcell.KeyF4:         window.KeyF4,
	tcell.KeyF5:         window.KeyF5,
	tcell.KeyF6:         window.KeyF6,
	tcell.KeyF7:         window.KeyF7,
	tcell.KeyF8:         window.KeyF8,
	tcell.KeyF9:         window.KeyF9,
	tcell.KeyF10:        window.KeyF10,
	tcell.KeyF11:        window.KeyF11,
	tcell.KeyF12:        window.KeyF12,
}

func translateMods(m tcell.ModMask) window.Mod {
	var out window.Mod
	if m&tcell.ModShift != 0 {
		out |= window.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= window.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= window.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= window.ModSuper
	}
	return out
}

// translateKey turns one terminal key report into a press/release pair,
// or text when no chord modifier is held. Terminals report no releases, so
// the release always clears the modifier state.
func translateKey(ev *tcell.EventKey) []window.Event {
	mods := translateMods(ev.Modifiers())
	press := func(k window.Key, m window.Mod) []window.Event {
		return []window.Event{window.KeyDown{Key: k, Mods: m}, window.KeyUp{Key: k}}
	}

	if k, ok := namedKeys[ev.Key()]; ok {
		if ev.Key() == tcell.KeyBacktab {
			mods |= window.ModShift
		}
		return press(k, mods)
	}
	switch key := ev.Key(); {
	case key == tcell.KeyCtrlSpace:
		return press(window.KeySpace, mods|window.ModCtrl)
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return press(window.KeyA+window.Key(key-tcell.KeyCtrlA), mods|window.ModCtrl)
	case key != tcell.KeyRune:
		return nil
	}

	r := ev.Rune()
	if mods&(window.ModCtrl|window.ModAlt) == 0 {
		return []window.Event{window.TextInput{Text: string(r)}}
	}
	k, ok := window.RuneKey(r)
	if !ok {
		return []window.Event{window.TextInput{Text: string(r)}}
	}
	if unicode.IsUpper(r) {
		mods |= window.ModShift
	}
	return press(k, mods)
}

// mouseTracker infers press, drag and release from successive button masks.
type mouseTracker struct {
	buttons tcell.ButtonMask
	x, y    int
}

var mouseButtons = []struct {
	mask tcell.ButtonMask
	id   window.MouseButtonID
}{
	{tcell.Button1, window.ButtonLeft},
	{tcell.Button2, window.ButtonRight},
	{tcell.Button3, window.ButtonMiddle},
}

func (m *mouseTracker) translate(ev *tcell.EventMouse) []window.Event {
	x, y := ev.Position()
	mods := translateMods(ev.Modifiers())
	mask := ev.Buttons()
	var out []window.Event

	switch {
	case mask&tcell.WheelUp != 0:
		out = append(out, window.MouseWheel{DY: 1, X: x, Y: y, Mods: mods})
	case mask&tcell.WheelDown != 0:
		out = append(out, window.MouseWheel{DY: -1, X: x, Y: y, Mods: mods})
	case mask&tcell.WheelLeft != 0:
		out = append(out, window.MouseWheel{DX: -1, X: x, Y: y, Mods: mods})
	case mask&tcell.WheelRight != 0:
		out = append(out, window.MouseWheel{DX: 1, X: x, Y: y, Mods: mods})
	}

	held := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	changed := false
	for _, b := range mouseButtons {
		was := m.buttons&b.mask != 0
		is := held&b.mask != 0
		if is == was {
			continue
		}
		changed = true
		out = append(out, window.MouseButton{Button: b.id, Pressed: is, X: x, Y: y, Clicks: 1, Mods: mods})
	}
	if !changed && (x != m.x || y != m.y) {
		out = append(out, window.MouseMotion{X: x, Y: y, Mods: mods})
	}

	m.buttons = held
	m.x, m.y = x, y
	return out
}
