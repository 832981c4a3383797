// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/flash.go
// Summary: Visual bell: a full-frame tint that fades out.
// Usage: Trigger on a visual bell; the renderer tints colors with Tint while Active.

package effects

import (
	"image/color"
	"time"
)

const DefaultFlashDuration = 250 * time.Millisecond

// Flash tints every drawn color toward Color, starting at full intensity
// and fading to zero over Duration.
type Flash struct {
	Color     color.RGBA
	Duration  time.Duration
	Intensity float32

	timeline *Timeline
}

// NewFlash returns an idle flash.
func NewFlash(c color.RGBA, duration time.Duration) *Flash {
	if duration < 0 {
		duration = 0
	}
	return &Flash{
		Color:     c,
		Duration:  duration,
		Intensity: 0.5,
		timeline:  NewTimeline(0, EaseOutQuad),
	}
}

// Trigger restarts the fade.
func (f *Flash) Trigger(now time.Time) {
	f.timeline.AnimateTo(1, 0, now)
	f.timeline.AnimateTo(0, f.Duration, now)
}

// Active reports whether the tint is visible at now.
func (f *Flash) Active(now time.Time) bool {
	return f.timeline.Value(now) > 0
}

// Tint blends c toward the flash color for the current intensity.
func (f *Flash) Tint(c color.RGBA, now time.Time) color.RGBA {
	amount := f.timeline.Value(now) * f.Intensity
	if amount <= 0 {
		return c
	}
	return blend(c, f.Color, amount)
}

func blend(base, over color.RGBA, amount float32) color.RGBA {
	if amount > 1 {
		amount = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*amount + 0.5)
	}
	return color.RGBA{R: mix(base.R, over.R), G: mix(base.G, over.G), B: mix(base.B, over.B), A: base.A}
}
