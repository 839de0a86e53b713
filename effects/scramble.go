package effects

import (
	"math"

	"termfolio/banner"
	"termfolio/render"
)

// scrambleSettleFrames is how long a glyph churns before it locks back
// onto its original rune.
const scrambleSettleFrames = 24

// Scramble churns hovered glyphs through random-looking characters,
// then validates them back to the original with an accent flash.
type Scramble struct{}

func NewScramble() *Scramble { return &Scramble{} }

func (Scramble) Name() string { return "scramble" }

func (Scramble) Hover(p *banner.Particle, ctx *Context) {
	f := float64(ctx.Frame)
	p.OffsetX = math.Sin(f*0.3+p.Phase) * 2
	p.OffsetY = math.Cos(f*0.27+p.Phase) * 2

	if ctx.HoverAge >= scrambleSettleFrames {
		p.Validated = true
	}
	if p.Validated {
		p.Char = p.Original
		p.Color = render.Lerp(ctx.Scheme.Accent, ctx.Scheme.Hot, 0.5)
		return
	}

	if r, ok := cycleGlyph(scrambleAlphabet, ctx.Frame, 2, p.Phase*3); ok {
		p.Char = r
	} else {
		p.Char = p.Original
	}
	p.Color = ctx.Scheme.Ramp(ctx.HoverProgress(scrambleSettleFrames))
}

func (Scramble) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.88)
}
