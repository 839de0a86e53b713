package effects

import (
	"math"

	"termfolio/banner"
)

// Binary flickers hovered glyphs between 0 and 1, blocks alternating
// between the dim and bright ends of the scheme.
type Binary struct{}

func NewBinary() *Binary { return &Binary{} }

func (Binary) Name() string { return "binary" }

func (Binary) Hover(p *banner.Particle, ctx *Context) {
	if r, ok := cycleGlyph(binaryAlphabet, ctx.Frame+uint64(p.Index), 5, p.Phase); ok {
		p.Char = r
	} else {
		p.Char = p.Original
	}

	if (ctx.Frame/5+uint64(p.BlockIndex))%2 == 0 {
		p.Color = ctx.Scheme.Base
	} else {
		p.Color = ctx.Scheme.Hot
	}

	p.OffsetX = 0
	p.OffsetY = math.Sin(float64(ctx.Frame)*0.05+p.Phase) * 1
}

func (Binary) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.9)
}
