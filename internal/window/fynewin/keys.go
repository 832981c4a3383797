package fynewin

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/framegrace/texelvim/internal/window"
)

var keyNames = map[fyne.KeyName]window.Key{
	fyne.KeyEscape:       window.KeyEscape,
	fyne.KeyReturn:       window.KeyEnter,
	fyne.KeyEnter:        window.KeyEnter,
	fyne.KeyTab:          window.KeyTab,
	fyne.KeyBackspace:    window.KeyBackspace,
	fyne.KeyDelete:       window.KeyDelete,
	fyne.KeyInsert:       window.KeyInsert,
	fyne.KeyUp:           window.KeyArrowUp,
	fyne.KeyDown:         window.KeyArrowDown,
	fyne.KeyLeft:         window.KeyLeft,
	fyne.KeyRight:        window.KeyRight,
	fyne.KeyHome:         window.KeyHome,
	fyne.KeyEnd:          window.KeyEnd,
	fyne.KeyPageUp:       window.KeyPageUp,
	fyne.KeyPageDown:     window.KeyPageDown,
	fyne.KeySpace:        window.KeySpace,
	fyne.KeyF1:           window.KeyF1,
	fyne.KeyF2:           window.KeyF2,
	fyne.KeyF3:           window.KeyF3,
	fyne.KeyF4:           window.KeyF4,
	fyne.KeyF5:           window.KeyF5,
	fyne.KeyF6:           window.KeyF6,
	fyne.KeyF7:           window.KeyF7,
	fyne.KeyF8:           window.KeyF8,
	fyne.KeyF9:           window.KeyF9,
	fyne.KeyF10:          window.KeyF10,
	fyne.KeyF11:          window.KeyF11,
	fyne.KeyF12:          window.KeyF12,
	fyne.KeyMinus:        window.KeyMinus,
	fyne.KeyEqual:        window.KeyEqual,
	fyne.KeyLeftBracket:  window.KeyLeftBracket,
	fyne.KeyRightBracket: window.KeyRightBracket,
	fyne.KeyBackslash:    window.KeyBackslash,
	fyne.KeySemicolon:    window.KeySemicolon,
	fyne.KeyApostrophe:   window.KeyApostrophe,
	fyne.KeyComma:        window.KeyComma,
	fyne.KeyPeriod:       window.KeyPeriod,
	fyne.KeySlash:        window.KeySlash,
	fyne.KeyBackTick:     window.KeyBackquote,

	desktop.KeyShiftLeft:    window.KeyLeftShift,
	desktop.KeyShiftRight:   window.KeyRightShift,
	desktop.KeyControlLeft:  window.KeyLeftCtrl,
	desktop.KeyControlRight: window.KeyRightCtrl,
	desktop.KeyAltLeft:      window.KeyLeftAlt,
	desktop.KeyAltRight:     window.KeyRightAlt,
	desktop.KeySuperLeft:    window.KeyLeftSuper,
	desktop.KeySuperRight:   window.KeyRightSuper,
}

// translateKeyName maps a fyne key name. Letters and digits are single
// character names.
func translateKeyName(name fyne.KeyName) window.Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	if len(name) == 1 {
		if k, ok := window.RuneKey(rune(name[0])); ok {
			return k
		}
	}
	return window.KeyUnknown
}

var modifierBits = map[window.Key]window.Mod{
	window.KeyLeftShift:  window.ModShift,
	window.KeyRightShift: window.ModShift,
	window.KeyLeftCtrl:   window.ModCtrl,
	window.KeyRightCtrl:  window.ModCtrl,
	window.KeyLeftAlt:    window.ModAlt,
	window.KeyRightAlt:   window.ModAlt,
	window.KeyLeftSuper:  window.ModSuper,
	window.KeyRightSuper: window.ModSuper,
}

// keyState derives modifier state from modifier key presses, since fyne key
// events carry none.
type keyState struct {
	mu   sync.Mutex
	down map[window.Key]bool
}

func (s *keyState) update(k window.Key, pressed bool) window.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down == nil {
		s.down = make(map[window.Key]bool)
	}
	if _, ok := modifierBits[k]; ok {
		if pressed {
			s.down[k] = true
		} else {
			delete(s.down, k)
		}
	}
	return s.modsLocked()
}

func (s *keyState) modsLocked() window.Mod {
	var m window.Mod
	for k := range s.down {
		m |= modifierBits[k]
	}
	return m
}

func (s *keyState) mods() window.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modsLocked()
}

func (s *keyState) keyDown(emit func(window.Event)) func(*fyne.KeyEvent) {
	return func(ev *fyne.KeyEvent) {
		k := translateKeyName(ev.Name)
		if k == window.KeyUnknown {
			return
		}
		emit(window.KeyDown{Key: k, Mods: s.update(k, true)})
	}
}

func (s *keyState) keyUp(emit func(window.Event)) func(*fyne.KeyEvent) {
	return func(ev *fyne.KeyEvent) {
		k := translateKeyName(ev.Name)
		if k == window.KeyUnknown {
			return
		}
		emit(window.KeyUp{Key: k, Mods: s.update(k, false)})
	}
}

func translateModifier(m fyne.KeyModifier) window.Mod {
	var out window.Mod
	if m&fyne.KeyModifierShift != 0 {
		out |= window.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= window.ModCtrl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= window.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= window.ModSuper
	}
	return out
}

func mouseButton(b desktop.MouseButton) (window.MouseButtonID, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return window.ButtonLeft, true
	case desktop.MouseButtonSecondary:
		return window.ButtonRight, true
	case desktop.MouseButtonTertiary:
		return window.ButtonMiddle, true
	}
	return 0, false
}

// clickCounter counts consecutive presses of one button at one spot.
type clickCounter struct {
	button window.MouseButtonID
	x, y   int
	at     time.Time
	count  int
}

const clickSlop = 4

func (c *clickCounter) press(b window.MouseButtonID, x, y int, now time.Time) int {
	near := abs(x-c.x) <= clickSlop && abs(y-c.y) <= clickSlop
	if b == c.button && near && now.Sub(c.at) <= doubleClickInterval {
		c.count++
	} else {
		c.count = 1
	}
	c.button, c.x, c.y, c.at = b, x, y, now
	return c.count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
