package banner

import (
	"termfolio/render"
)

// Particle is one visible glyph of the banner. Position fields are in
// pixel units. BaseX/BaseY is the layout anchor and never changes after
// a build; OffsetX/OffsetY is the effect displacement applied on top of
// it. X/Y holds the position the particle was last drawn at.
type Particle struct {
	Char     rune
	Original rune

	X, Y    float64
	BaseX   float64
	BaseY   float64
	OffsetX float64
	OffsetY float64

	Opacity       float64
	TargetOpacity float64
	Color         render.RGB

	Index      int
	Phase      float64
	BlockIndex int

	// Scratch state owned by the hover effects. Seeded deterministically
	// at build so rebuilds reproduce the same values.
	Validated   bool
	Highlighted bool
	Price       float64
	Trend       float64
	RiskLevel   float64

	Typed bool
}

// Drift reports how far the particle currently sits from its anchor.
func (p *Particle) Drift() (dx, dy float64) {
	return p.OffsetX, p.OffsetY
}

// Settle snaps the particle back onto its anchor.
func (p *Particle) Settle() {
	p.OffsetX = 0
	p.OffsetY = 0
	p.Char = p.Original
}

// seedScratch derives the effect scratch values from a stable seed.
// Pure function of the seed, nothing else.
func (p *Particle) seedScratch(seed int) {
	if seed < 0 {
		seed = -seed
	}
	p.Price = 100 + float64(seed%400) + float64(seed%97)/97
	p.Trend = float64(seed%11)/5 - 1
	p.RiskLevel = float64(seed%101) / 100
}
