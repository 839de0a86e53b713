package theme

import "termfolio/render"

// Scheme is the colour ramp one effect paints with. Base is the
// resting colour, Hot the fully excited colour, Accent the occasional
// flash.
type Scheme struct {
	Name   string
	Base   render.RGB
	Hot    render.RGB
	Accent render.RGB
}

// Ramp interpolates Base toward Hot by progress in [0, 1].
func (s Scheme) Ramp(progress float64) render.RGB {
	return render.Lerp(s.Base, s.Hot, progress)
}

// Sink receives the scheme of the newly selected effect. The effect
// dispatcher pushes schemes through this instead of touching UI
// components directly.
type Sink interface {
	ApplyScheme(s Scheme)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(s Scheme)

func (f SinkFunc) ApplyScheme(s Scheme) { f(s) }

var fallback = Scheme{
	Name:   "plain",
	Base:   render.RGB{R: 204, G: 204, B: 204},
	Hot:    render.RGB{R: 255, G: 255, B: 255},
	Accent: render.RGB{R: 120, G: 180, B: 255},
}

var schemes = map[string]Scheme{
	"matrix": {
		Name:   "matrix",
		Base:   render.RGB{R: 0, G: 180, B: 90},
		Hot:    render.RGB{R: 160, G: 255, B: 160},
		Accent: render.RGB{R: 255, G: 255, B: 255},
	},
	"wave": {
		Name:   "wave",
		Base:   render.RGB{R: 60, G: 130, B: 220},
		Hot:    render.RGB{R: 140, G: 220, B: 255},
		Accent: render.RGB{R: 255, G: 255, B: 255},
	},
	"scramble": {
		Name:   "scramble",
		Base:   render.RGB{R: 220, G: 160, B: 60},
		Hot:    render.RGB{R: 255, G: 220, B: 120},
		Accent: render.RGB{R: 255, G: 80, B: 80},
	},
	"pulse": {
		Name:   "pulse",
		Base:   render.RGB{R: 180, G: 70, B: 200},
		Hot:    render.RGB{R: 255, G: 140, B: 255},
		Accent: render.RGB{R: 255, G: 255, B: 255},
	},
	"ticker": {
		Name:   "ticker",
		Base:   render.RGB{R: 120, G: 200, B: 120},
		Hot:    render.RGB{R: 230, G: 80, B: 80},
		Accent: render.RGB{R: 255, G: 215, B: 0},
	},
	"binary": {
		Name:   "binary",
		Base:   render.RGB{R: 110, G: 110, B: 110},
		Hot:    render.RGB{R: 0, G: 220, B: 220},
		Accent: render.RGB{R: 255, G: 255, B: 255},
	},
}

// SchemeFor returns the scheme registered for an effect name, or a
// neutral fallback so callers never paint with a zero value.
func SchemeFor(effect string) Scheme {
	if s, ok := schemes[effect]; ok {
		return s
	}
	return fallback
}
