// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/bell/player.go
// Summary: Audible bell played through the system speaker.
// Usage: NewPlayer(), Init() once (failure leaves the player silent), Ring() per bell.

package bell

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneHz       = 880.0
	toneDuration = 80 * time.Millisecond
	volume       = 0.2
)

// Player rings a short sine tone. All methods are safe to call before Init
// or after a failed Init.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer returns a silent player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ring queues one tone.
func (p *Player) Ring() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(toneDuration), newTone(sampleRate, toneHz)))
	speaker.Unlock()
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
	log.Printf("bell: speaker stopped")
}

// tone is a sine wave with a linear fade-out over its first fade samples.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	fade int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq, fade: sr.N(toneDuration)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		env := 1.0
		if t.fade > 0 {
			env = math.Max(0, 1-float64(t.pos)/float64(t.fade))
		}
		s := volume * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
