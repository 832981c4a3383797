package window

// Key identifies a physical key independent of the backend.
type Key int

const (
	KeyUnknown Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyArrowUp
	KeyArrowDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackquote

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

// IsModifier reports whether k is a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightSuper
}

// IsPrintable reports whether k normally produces text.
func (k Key) IsPrintable() bool {
	return k == KeySpace || (k >= KeyA && k <= KeyBackquote)
}

// LetterKey returns the key for an ASCII letter (either case).
func LetterKey(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyUnknown, false
}

// RuneKey maps a US-layout character to its key.
func RuneKey(r rune) (Key, bool) {
	if k, ok := LetterKey(r); ok {
		return k, true
	}
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0'), true
	}
	k, ok := punctuationKeys[r]
	return k, ok
}

var punctuationKeys = map[rune]Key{
	' ':  KeySpace,
	'-':  KeyMinus,
	'=':  KeyEqual,
	'[':  KeyLeftBracket,
	']':  KeyRightBracket,
	'\\': KeyBackslash,
	';':  KeySemicolon,
	'\'': KeyApostrophe,
	',':  KeyComma,
	'.':  KeyPeriod,
	'/':  KeySlash,
	'`':  KeyBackquote,
}
