package fynewin

import (
	"image"
	"reflect"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/framegrace/texelvim/internal/window"
)

func TestTranslateKeyName(t *testing.T) {
	tests := []struct {
		name fyne.KeyName
		want window.Key
	}{
		{fyne.KeyEscape, window.KeyEscape},
		{fyne.KeyReturn, window.KeyEnter},
		{fyne.KeyA, window.KeyA},
		{fyne.Key7, window.Key7},
		{fyne.KeyBackTick, window.KeyBackquote},
		{fyne.KeySpace, window.KeySpace},
		{desktop.KeyControlLeft, window.KeyLeftCtrl},
		{"CapsLock", window.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKeyName(tt.name); got != tt.want {
			t.Errorf("translateKeyName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyStateTracksModifiers(t *testing.T) {
	var events []window.Event
	emit := func(ev window.Event) { events = append(events, ev) }
	var ks keyState
	down := ks.keyDown(emit)
	up := ks.keyUp(emit)

	down(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	down(&fyne.KeyEvent{Name: desktop.KeyShiftRight})
	down(&fyne.KeyEvent{Name: fyne.KeyW})
	up(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	up(&fyne.KeyEvent{Name: fyne.KeyW})
	down(&fyne.KeyEvent{Name: "CapsLock"})

	want := []window.Event{
		window.KeyDown{Key: window.KeyLeftCtrl, Mods: window.ModCtrl},
		window.KeyDown{Key: window.KeyRightShift, Mods: window.ModCtrl | window.ModShift},
		window.KeyDown{Key: window.KeyW, Mods: window.ModCtrl | window.ModShift},
		window.KeyUp{Key: window.KeyLeftCtrl, Mods: window.ModShift},
		window.KeyUp{Key: window.KeyW, Mods: window.ModShift},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %#v\nwant %#v", events, want)
	}
}

func TestClickCounter(t *testing.T) {
	var c clickCounter
	t0 := time.Unix(100, 0)
	steps := []struct {
		button window.MouseButtonID
		x, y   int
		at     time.Duration
		want   int
	}{
		{window.ButtonLeft, 10, 10, 0, 1},
		{window.ButtonLeft, 11, 10, 200 * time.Millisecond, 2},
		{window.ButtonLeft, 11, 11, 350 * time.Millisecond, 3},
		{window.ButtonRight, 11, 11, 400 * time.Millisecond, 1},
		{window.ButtonRight, 40, 11, 500 * time.Millisecond, 1},
		{window.ButtonRight, 40, 11, 2 * time.Second, 1},
	}
	for i, s := range steps {
		if got := c.press(s.button, s.x, s.y, t0.Add(s.at)); got != s.want {
			t.Fatalf("step %d: clicks = %d, want %d", i, got, s.want)
		}
	}
}

func TestTranslateModifier(t *testing.T) {
	got := translateModifier(fyne.KeyModifierControl | fyne.KeyModifierAlt)
	if got != window.ModCtrl|window.ModAlt {
		t.Fatalf("mods = %v", got)
	}
}

func TestGridWidgetPointerEvents(t *testing.T) {
	test.NewTempApp(t)
	var events []window.Event
	var sized [][2]int
	g := newGridWidget(func(ev window.Event) { events = append(events, ev) }, func() float32 { return 2 })
	g.onResize = func(w, h int) { sized = append(sized, [2]int{w, h}) }

	g.Resize(fyne.NewSize(100, 50))
	if len(sized) != 1 || sized[0] != [2]int{200, 100} {
		t.Fatalf("resize reports = %v", sized)
	}

	press := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary, Modifier: fyne.KeyModifierShift}
	press.Position = fyne.NewPos(5, 7)
	g.MouseDown(press)
	g.MouseUp(press)

	scroll := &fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -3)}
	scroll.Position = fyne.NewPos(1, 1)
	g.Scrolled(scroll)

	want := []window.Event{
		window.MouseButton{Button: window.ButtonLeft, Pressed: true, X: 10, Y: 14, Clicks: 1, Mods: window.ModShift},
		window.MouseButton{Button: window.ButtonLeft, Pressed: false, X: 10, Y: 14, Clicks: 1, Mods: window.ModShift},
		window.MouseWheel{DY: -1, X: 2, Y: 2},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %#v\nwant %#v", events, want)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	g.setFrame(frame)
	if g.img.Image != frame {
		t.Fatalf("frame not installed")
	}
}
