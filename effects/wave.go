package effects

import (
	"math"

	"termfolio/banner"
)

// Wave rolls a sine swell through hovered glyphs without ever touching
// the glyph itself.
type Wave struct{}

func NewWave() *Wave { return &Wave{} }

func (Wave) Name() string { return "wave" }

func (Wave) Hover(p *banner.Particle, ctx *Context) {
	p.Char = p.Original

	f := float64(ctx.Frame)
	p.OffsetY = math.Sin(f*0.12+p.BaseX*0.05) * 4
	p.OffsetX = math.Cos(f*0.1+p.Phase) * 2

	p.Color = ctx.Scheme.Ramp(ctx.HoverProgress(15))
}

func (Wave) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.92)
}
