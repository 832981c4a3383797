// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Single-value animation timeline with configurable easing.
// Usage: AnimateTo(target, duration, now) then Value(now) each frame.

package effects

import "time"

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(progress float32) float32

var (
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep accelerates at the start and decelerates at the end.
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}
)

// Timeline animates one float value. Callers pass the clock explicitly;
// it is not safe for concurrent use.
type Timeline struct {
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// NewTimeline returns a timeline resting at initial.
func NewTimeline(initial float32, easing EasingFunc) *Timeline {
	if easing == nil {
		easing = EaseSmoothstep
	}
	return &Timeline{start: initial, target: initial, easing: easing}
}

// AnimateTo starts a transition from the current value to target.
func (tl *Timeline) AnimateTo(target float32, duration time.Duration, now time.Time) {
	current := tl.Value(now)
	tl.start = current
	tl.target = target
	tl.startTime = now
	tl.duration = duration
	if duration <= 0 {
		tl.start = target
	}
}

// Value returns the value at now.
func (tl *Timeline) Value(now time.Time) float32 {
	if tl.duration <= 0 || !now.Before(tl.startTime.Add(tl.duration)) {
		return tl.target
	}
	if now.Before(tl.startTime) {
		return tl.start
	}
	progress := float32(now.Sub(tl.startTime)) / float32(tl.duration)
	return tl.start + (tl.target-tl.start)*tl.easing(progress)
}

// Animating reports whether the value is still changing at now.
func (tl *Timeline) Animating(now time.Time) bool {
	return tl.duration > 0 && tl.start != tl.target && now.Before(tl.startTime.Add(tl.duration))
}
