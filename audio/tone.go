package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the raw waveform a tone produces.
type waveShape uint8

const (
	shapeSine waveShape = iota
	shapeSquare
	shapeSaw
	shapeNoise
)

// tone is a fixed-length single-frequency streamer.
type tone struct {
	freq  float64
	phase float64
	total int
	pos   int
	shape waveShape
	rate  beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		shape: shape,
		rate:  rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.shape {
		case shapeSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case shapeSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case shapeSaw:
			val = 2.0*o.phase - 1.0
		case shapeNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func shaped(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		if rem := e.total - e.pos; rem < e.release && e.release > 0 {
			vol = float64(rem) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withGain scales a streamer by a linear gain factor.
// Log2 of zero is -Inf, so zero gain switches to the silent path.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
