package window

import "testing"

func TestRuneKey(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'a', KeyA, true},
		{'Z', KeyZ, true},
		{'7', Key7, true},
		{'\\', KeyBackslash, true},
		{'`', KeyBackquote, true},
		{' ', KeySpace, true},
		{'é', KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := RuneKey(tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RuneKey(%q) = (%v, %v), want (%v, %v)", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyClasses(t *testing.T) {
	if !KeyLeftCtrl.IsModifier() || KeyA.IsModifier() {
		t.Fatalf("modifier classification wrong")
	}
	if !KeyQ.IsPrintable() || !KeySlash.IsPrintable() || KeyF1.IsPrintable() || KeyLeftAlt.IsPrintable() {
		t.Fatalf("printable classification wrong")
	}
	if KeyArrowUp == KeyArrowDown || KeyArrowUp.IsPrintable() || KeyArrowDown.IsModifier() {
		t.Fatalf("arrow key classification wrong")
	}
	if !(ModCtrl | ModShift).Has(ModCtrl) || ModAlt.Has(ModCtrl) {
		t.Fatalf("Mod.Has wrong")
	}
}
