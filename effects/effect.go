package effects

import (
	"math"

	"termfolio/banner"
	"termfolio/render"
)

// Effect animates particles. Hover runs while the pointer captures the
// particle, Idle every other frame. Strategies mutate the particle in
// place and must never panic: when a glyph cannot be produced they
// keep the original rune.
type Effect interface {
	Name() string
	Hover(p *banner.Particle, ctx *Context)
	Idle(p *banner.Particle, ctx *Context)
}

// easeToRest is the shared idle path: offsets shrink multiplicatively,
// the glyph reverts, the colour eases back to the scheme base and the
// trend drains to zero. Decay must stay inside (0.85, 0.98) so release
// animations neither snap nor linger.
func easeToRest(p *banner.Particle, ctx *Context, decay float64) {
	p.OffsetX *= decay
	p.OffsetY *= decay
	if math.Abs(p.OffsetX)+math.Abs(p.OffsetY) < 0.05 {
		p.OffsetX = 0
		p.OffsetY = 0
	}
	p.Char = p.Original
	p.Color = render.Lerp(p.Color, ctx.Scheme.Base, 0.08)
	p.Trend *= 0.95
	if math.Abs(p.Trend) < 0.001 {
		p.Trend = 0
	}
}
