//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeFreq     = 880
	chimeDuration = 120 * time.Millisecond
)

// hostChime plays a short sine tone through the system speaker.
// The speaker is opened lazily; if that fails the chime stays silent.
type hostChime struct {
	mu     sync.Mutex
	ready  bool
	failed bool
}

func newHostChime() *hostChime { return &hostChime{} }

func (c *hostChime) Ring() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failed {
		return
	}
	if !c.ready {
		if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
			c.failed = true
			return
		}
		c.ready = true
	}

	sine, err := generators.SineTone(chimeRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeDuration), sine))
}
