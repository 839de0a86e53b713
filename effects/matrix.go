package effects

import (
	"math"

	"termfolio/banner"
)

// Matrix rains half-width katakana through hovered glyphs, column
// blocks lighting up staggered.
type Matrix struct{}

func NewMatrix() *Matrix { return &Matrix{} }

func (Matrix) Name() string { return "matrix" }

func (Matrix) Hover(p *banner.Particle, ctx *Context) {
	if r, ok := cycleGlyph(matrixAlphabet, ctx.Frame, 3, p.Phase*2); ok {
		p.Char = r
	} else {
		p.Char = p.Original
	}

	f := float64(ctx.Frame)
	p.OffsetX = math.Cos(f*0.11+p.Phase) * 1.5
	p.OffsetY = math.Sin(f*0.17+p.Phase) * 3

	progress := ctx.BlockProgress(p.BlockIndex, 4, 40)
	p.Color = ctx.Scheme.Ramp(progress)
	// Glint at the head of each block cycle.
	if progress < 0.05 {
		p.Color = ctx.Scheme.Accent
	}

	p.Trend = clampF(p.Trend+math.Sin(f*0.2+p.Phase)*0.02, -1, 1)
}

func (Matrix) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.9)
}
