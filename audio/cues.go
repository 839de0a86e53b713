package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const cueRate = beep.SampleRate(44100)

// Cue identifies one of the short interface sounds.
type Cue uint8

const (
	CueStartup Cue = iota
	CueKeypress
	CueMode
	CueEffect
	CueError
)

// startupCue is a rising two-note chime played once the screen is up.
func startupCue() beep.Streamer {
	low := shaped(newTone(523.25, 90*time.Millisecond, shapeSine, cueRate),
		90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, cueRate)
	high := shaped(newTone(783.99, 110*time.Millisecond, shapeSine, cueRate),
		110*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, cueRate)
	return withGain(beep.Seq(low, high), 0.35)
}

// keypressCue is a faint tick for insert-mode typing.
func keypressCue() beep.Streamer {
	tick := shaped(newTone(1320, 20*time.Millisecond, shapeSine, cueRate),
		20*time.Millisecond, 2*time.Millisecond, 14*time.Millisecond, cueRate)
	return withGain(tick, 0.12)
}

// modeCue is a two-tone blip marking a mode change.
func modeCue() beep.Streamer {
	a := shaped(newTone(660, 45*time.Millisecond, shapeSquare, cueRate),
		45*time.Millisecond, 3*time.Millisecond, 20*time.Millisecond, cueRate)
	b := shaped(newTone(880, 45*time.Millisecond, shapeSquare, cueRate),
		45*time.Millisecond, 3*time.Millisecond, 25*time.Millisecond, cueRate)
	return withGain(beep.Seq(a, b), 0.18)
}

// effectCue is a short noise whoosh for cycling the active effect.
func effectCue() beep.Streamer {
	whoosh := shaped(newTone(0, 120*time.Millisecond, shapeNoise, cueRate),
		120*time.Millisecond, 30*time.Millisecond, 70*time.Millisecond, cueRate)
	return withGain(whoosh, 0.22)
}

// errorCue is a low buzz for rejected commands.
func errorCue() beep.Streamer {
	buzz := shaped(newTone(110, 160*time.Millisecond, shapeSaw, cueRate),
		160*time.Millisecond, 8*time.Millisecond, 60*time.Millisecond, cueRate)
	return withGain(buzz, 0.3)
}

// cueStreamer builds a fresh one-shot streamer for a cue.
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueStartup:
		return startupCue()
	case CueKeypress:
		return keypressCue()
	case CueMode:
		return modeCue()
	case CueEffect:
		return effectCue()
	case CueError:
		return errorCue()
	default:
		return nil
	}
}

// Cues plays the interface sounds through a shared speaker mixer.
// A failed speaker init leaves it permanently silent; every method
// stays safe to call.
type Cues struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
	muted bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the speaker. The error is informational: on failure the
// cues degrade to no-ops rather than aborting the program.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}
	if err := speaker.Init(cueRate, cueRate.N(80*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

// Play queues a cue. Dropped silently when muted or uninitialized.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	ready, muted := c.ready, c.muted
	c.mu.Unlock()

	if !ready || muted {
		return
	}
	s := cueStreamer(cue)
	if s == nil {
		return
	}

	// The speaker goroutine reads the mixer concurrently.
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted applies a persisted or configured mute preference.
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Toggle flips the mute state and reports whether sound is now audible.
func (c *Cues) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return !c.muted
}

// Muted reports the current mute preference.
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Ready reports whether the speaker opened successfully.
func (c *Cues) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Close drains the mixer. The speaker itself has no close; clearing
// the streamers is enough to stop output.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.ready = false
}
