// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/window/event.go
// Summary: Backend-neutral window events consumed by the presentation loop.
// Usage: Backends translate native events into these values and send them on Window.Events.

package window

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every bit of m2 is set in m.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

// Event is one input or lifecycle notification from the window system.
type Event interface {
	isEvent()
}

// KeyDown is a physical key press. Mods is the modifier state after the press.
type KeyDown struct {
	Key  Key
	Mods Mod
}

// KeyUp is a physical key release. Mods is the modifier state after the release.
type KeyUp struct {
	Key  Key
	Mods Mod
}

// TextInput is text produced by the platform input method.
type TextInput struct {
	Text string
}

// MouseButtonID names a pointer button.
type MouseButtonID int

const (
	ButtonLeft MouseButtonID = iota + 1
	ButtonRight
	ButtonMiddle
)

// MouseButton is a press or release at pixel position X, Y. Clicks counts
// consecutive presses (2 for a double click).
type MouseButton struct {
	Button  MouseButtonID
	Pressed bool
	X, Y    int
	Clicks  int
	Mods    Mod
}

// MouseMotion is pointer movement in pixels.
type MouseMotion struct {
	X, Y int
	Mods Mod
}

// MouseWheel is a scroll step. Positive DY scrolls up, positive DX scrolls right.
type MouseWheel struct {
	DX, DY int
	X, Y   int
	Mods   Mod
}

// Resized reports the new drawable size in pixels.
type Resized struct {
	Width  int
	Height int
}

// Quit is sent when the user closes the window.
type Quit struct{}

func (KeyDown) isEvent()     {}
func (KeyUp) isEvent()       {}
func (TextInput) isEvent()   {}
func (MouseButton) isEvent() {}
func (MouseMotion) isEvent() {}
func (MouseWheel) isEvent()  {}
func (Resized) isEvent()     {}
func (Quit) isEvent()        {}
