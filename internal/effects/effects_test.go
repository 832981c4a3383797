package effects

import (
	"image/color"
	"testing"
	"time"
)

func TestTimelineEasesToTarget(t *testing.T) {
	t0 := time.Unix(0, 0)
	tl := NewTimeline(0, EaseLinear)
	tl.AnimateTo(1, 100*time.Millisecond, t0)

	tests := []struct {
		at   time.Duration
		want float32
	}{
		{0, 0},
		{50 * time.Millisecond, 0.5},
		{100 * time.Millisecond, 1},
		{time.Second, 1},
	}
	for _, tt := range tests {
		if got := tl.Value(t0.Add(tt.at)); got != tt.want {
			t.Errorf("value at %v = %v, want %v", tt.at, got, tt.want)
		}
	}
	if !tl.Animating(t0.Add(10 * time.Millisecond)) {
		t.Fatalf("expected animating mid-transition")
	}
	if tl.Animating(t0.Add(200 * time.Millisecond)) {
		t.Fatalf("expected idle after duration")
	}
}

func TestTimelineRetargetsFromCurrentValue(t *testing.T) {
	t0 := time.Unix(0, 0)
	tl := NewTimeline(0, EaseLinear)
	tl.AnimateTo(1, 100*time.Millisecond, t0)
	mid := t0.Add(50 * time.Millisecond)
	tl.AnimateTo(0, 100*time.Millisecond, mid)
	if got := tl.Value(mid); got != 0.5 {
		t.Fatalf("retarget start = %v, want 0.5", got)
	}
	if got := tl.Value(mid.Add(50 * time.Millisecond)); got != 0.25 {
		t.Fatalf("halfway back = %v, want 0.25", got)
	}
}

func TestFlashTintsThenFades(t *testing.T) {
	t0 := time.Unix(0, 0)
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	f := NewFlash(white, 200*time.Millisecond)
	if f.Active(t0) || f.Tint(black, t0) != black {
		t.Fatalf("idle flash should not tint")
	}
	f.Trigger(t0)
	if !f.Active(t0) {
		t.Fatalf("flash inactive right after trigger")
	}
	if got := f.Tint(black, t0); got != (color.RGBA{128, 128, 128, 255}) {
		t.Fatalf("tint at trigger = %v", got)
	}
	mid := f.Tint(black, t0.Add(100*time.Millisecond))
	if mid.R == 0 || mid.R >= 128 {
		t.Fatalf("tint mid-fade = %v", mid)
	}
	end := t0.Add(200 * time.Millisecond)
	if f.Active(end) || f.Tint(black, end) != black {
		t.Fatalf("flash should be gone after duration")
	}
}
