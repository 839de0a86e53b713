package effects

import (
	"math"

	"termfolio/banner"
)

// Pulse shoves glyphs radially away from the pointer, strongest at the
// centre of the capture radius.
type Pulse struct{}

func NewPulse() *Pulse { return &Pulse{} }

func (Pulse) Name() string { return "pulse" }

func (Pulse) Hover(p *banner.Particle, ctx *Context) {
	p.Char = p.Original

	dx := p.BaseX - ctx.PointerX
	dy := p.BaseY - ctx.PointerY
	dist := math.Sqrt(dx*dx + dy*dy)

	var nx, ny float64
	if dist > 0.001 {
		nx = dx / dist
		ny = dy / dist
	} else {
		// Dead centre has no direction, so the phase picks one.
		nx = math.Cos(p.Phase)
		ny = math.Sin(p.Phase)
	}

	strength := clampF(1-dist/ctx.Threshold, 0, 1)
	mag := 6 * strength
	p.OffsetX = nx * mag
	p.OffsetY = ny * mag * 0.6

	p.Color = ctx.Scheme.Ramp(strength)
}

func (Pulse) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.9)
}
