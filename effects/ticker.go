package effects

import (
	"math"

	"termfolio/banner"
	"termfolio/render"
)

// tickerPhaseFrames is the length of one ticker sub-phase.
const tickerPhaseFrames = 20

// Ticker runs hovered glyphs through a six step market cycle: quote,
// drift, surge, risk, settle, and a payout finale. The cycle wraps as
// long as the pointer stays.
type Ticker struct{}

func NewTicker() *Ticker { return &Ticker{} }

func (Ticker) Name() string { return "ticker" }

func (Ticker) Hover(p *banner.Particle, ctx *Context) {
	f := float64(ctx.Frame)
	step := int(ctx.Frame/tickerPhaseFrames) % 6
	stepProgress := float64(ctx.Frame%tickerPhaseFrames) / tickerPhaseFrames

	switch step {
	case 0: // quote: flash price digits, arm a fresh cycle
		p.Validated = false
		if r, ok := cycleGlyph(tickerDigits, ctx.Frame, 4, p.Phase); ok {
			p.Char = r
		} else {
			p.Char = p.Original
		}
		p.Color = ctx.Scheme.Base
		p.OffsetX = 0
		p.OffsetY = 0

	case 1: // drift: the market moves
		p.Price = clampF(p.Price+math.Sin(f*0.2+p.Phase)*0.8, 50, 999)
		p.Trend = clampF(p.Trend+math.Cos(f*0.15+p.Phase)*0.05, -1, 1)
		if p.Trend >= 0 {
			p.Char = '+'
			p.Color = ctx.Scheme.Base
		} else {
			p.Char = '-'
			p.Color = ctx.Scheme.Hot
		}

	case 2: // surge: price momentum lifts or sinks the glyph
		dir := 1.0
		p.Char = 'v'
		if p.Trend >= 0 {
			dir = -1.0
			p.Char = '^'
		}
		p.OffsetY = dir * math.Abs(math.Sin(f*0.1+p.Phase)) * 5
		p.Color = ctx.Scheme.Ramp(math.Abs(p.Trend))

	case 3: // risk: colour by the particle's risk level
		if r, ok := cycleGlyph(tickerSymbols, ctx.Frame, 6, p.Phase*2); ok {
			p.Char = r
		} else {
			p.Char = p.Original
		}
		p.Color = ctx.Scheme.Ramp(p.RiskLevel)
		p.OffsetX = math.Sin(f*0.2+p.Phase) * 1.5

	case 4: // settle: ease back toward the resting glyph
		p.Char = p.Original
		p.OffsetX *= 0.9
		p.OffsetY *= 0.9
		p.Color = render.Lerp(ctx.Scheme.Hot, ctx.Scheme.Base, stepProgress)

	case 5: // finale: payout flash before the cycle wraps
		p.Validated = true
		p.Char = '$'
		p.Color = ctx.Scheme.Accent
		p.OffsetY = math.Sin(f*0.3+p.Phase) * 2
	}
}

func (Ticker) Idle(p *banner.Particle, ctx *Context) {
	easeToRest(p, ctx, 0.93)
}
