// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/ui_state.go
// Summary: Presentation loop state: grid mirror, translator, renderer and side effects.
// Usage: Owned by Run; every method runs on the presentation goroutine.

package clientruntime

import (
	"errors"
	"log"
	"time"

	"github.com/framegrace/texelvim/client"
	"github.com/framegrace/texelvim/internal/effects"
	"github.com/framegrace/texelvim/internal/window"
	"github.com/framegrace/texelvim/protocol"
)

const flashFrameInterval = 16 * time.Millisecond

type uiState struct {
	win        window.Window
	state      *client.State
	translator *InputTranslator
	renderer   *renderer
	flash      *effects.Flash
	requests   chan<- protocol.ClientCommand

	title string
	// dirty is set by mutations applied since the last flush.
	dirty  bool
	frames int
}

// drainResult reports how a drain ended.
type drainResult struct {
	closed bool
	err    error
}

// drain applies first and then every command already queued, without
// blocking, and renders once if any of them was a flush. A close ends the
// drain after the pending frame is drawn.
func (s *uiState) drain(first protocol.Command, more <-chan protocol.Command) drainResult {
	var res drainResult
	flushed := false
	for cmd, ok := first, true; ok; {
		if c, isClose := cmd.(protocol.Close); isClose {
			res = drainResult{closed: true, err: c.Err}
			break
		}
		if _, isFlush := cmd.(protocol.Flush); isFlush {
			flushed = true
		}
		s.apply(cmd)

		select {
		case cmd, ok = <-more:
			if !ok {
				res.closed = true
			}
		default:
			ok = false
		}
	}
	if flushed {
		s.render()
	}
	return res
}

func (s *uiState) apply(cmd protocol.Command) {
	if err := s.state.Apply(cmd); err != nil {
		if errors.Is(err, client.ErrOutOfBounds) {
			log.Printf("client: %v", err)
		} else {
			log.Printf("client: apply %T failed: %v", cmd, err)
		}
	}
	switch c := cmd.(type) {
	case protocol.Flush:
		s.dirty = false
	case protocol.SetTitle:
		if c.Title != s.title {
			s.title = c.Title
			s.win.SetTitle(c.Title)
		}
	case protocol.Bell:
		s.win.Bell(c.Visual)
		if c.Visual && s.flash != nil {
			s.flash.Trigger(s.renderer.now())
		}
	case protocol.MouseEnabled:
		s.translator.SetMouseEnabled(c.Enabled)
	default:
		s.dirty = true
	}
}

// handleEvent processes one window event. It reports whether the user asked
// to quit.
func (s *uiState) handleEvent(ev window.Event) bool {
	switch e := ev.(type) {
	case window.Quit:
		return true
	case window.Resized:
		s.win.Surface().Resize(e.Width, e.Height)
		sendRequests(s.requests, s.translator.Translate(ev))
		if !s.dirty {
			s.render()
		}
		return false
	}
	sendRequests(s.requests, s.translator.Translate(ev))
	return false
}

// flashing reports whether the visual bell still needs frames.
func (s *uiState) flashing() bool {
	return s.flash != nil && s.flash.Active(s.renderer.now())
}

// tick renders a flash frame unless mutations are waiting for a flush.
func (s *uiState) tick() {
	if !s.dirty {
		s.render()
	}
}

func (s *uiState) render() {
	if err := s.renderer.render(s.state); err != nil {
		log.Printf("render: present failed: %v", err)
	}
	s.frames++
}
