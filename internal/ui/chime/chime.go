// Package chime plays a short tone when a countdown finishes.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 880
	beeps      = 3
)

var (
	toneLength = 150 * time.Millisecond
	gapLength  = 100 * time.Millisecond
)

// Player owns the speaker. The zero value is silent until Init succeeds.
type Player struct {
	ready bool
}

// Init opens the audio device.
func (player *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.ready = true
	return nil
}

// Ready reports whether the speaker was opened.
func (player *Player) Ready() bool {
	return player.ready
}

// Play queues the chime without blocking. It is a no-op before Init.
func (player *Player) Play() error {
	if !player.ready {
		return nil
	}
	streamer, err := Tone()
	if err != nil {
		return err
	}
	speaker.Play(streamer)
	return nil
}

// Tone builds the chime: beeps separated by short silences.
func Tone() (beep.Streamer, error) {
	var parts []beep.Streamer
	for i := 0; i < beeps; i++ {
		sine, err := generators.SineTone(sampleRate, frequency)
		if err != nil {
			return nil, fmt.Errorf("sine tone: %w", err)
		}
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(gapLength)))
		}
		parts = append(parts, beep.Take(sampleRate.N(toneLength), sine))
	}
	return beep.Seq(parts...), nil
}
