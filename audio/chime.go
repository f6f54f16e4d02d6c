// Package audio plays the short tone heard when the snake eats.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime is a sine tone of fixed pitch and length. A Chime whose speaker was
// never initialized is silent.
type Chime struct {
	freq     float64
	duration time.Duration
	enabled  bool
}

func NewChime(freq float64, duration time.Duration) *Chime {
	return &Chime{
		freq:     freq,
		duration: duration,
	}
}

// Init opens the speaker. Failure leaves the chime silent.
func (c *Chime) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		c.enabled = true
	}
	return err
}

// Streamer returns a fresh stream of the tone.
func (c *Chime) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(c.duration), sine), nil
}

// Play queues the tone without blocking.
func (c *Chime) Play() {
	if !c.enabled {
		return
	}
	s, err := c.Streamer()
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *Chime) Enabled() bool {
	return c.enabled
}

func (c *Chime) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
