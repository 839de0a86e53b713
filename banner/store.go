package banner

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"termfolio/render"
)

const (
	// DefaultFontSize is the banner glyph size in pixels when the
	// caller does not configure one.
	DefaultFontSize = 16.0

	// topOffsetRatio positions the first banner row at this multiple
	// of the font size from the top of the surface.
	topOffsetRatio = 2.5

	// blockWidth groups this many columns into one block index for
	// staggered effects.
	blockWidth = 4

	// highlightBoost enlarges highlighted glyphs relative to the
	// banner font.
	highlightBoost = 1.15

	// pulseFrames is how long a keystroke pulse stays lit.
	pulseFrames = 14

	// typeStartUnset marks a store that has not rendered since its
	// last build. The first render pass anchors the type-in animation.
	typeStartUnset = ^uint64(0)
)

// Store owns every banner particle and draws them onto its surface.
// It is confined to the frame goroutine: all methods must be called
// from scheduler tasks or before the scheduler starts. Pointers
// handed out by queries are invalidated by the next Build or Resize.
type Store struct {
	surface  render.Surface
	fontSize float64
	fill     render.RGB

	template  string
	particles []Particle

	static    bool
	typeStart uint64

	pulseActive bool
	pulseUntil  uint64
}

// NewStore creates an empty store drawing onto surface. fontPx at or
// below zero selects DefaultFontSize.
func NewStore(surface render.Surface, fontPx float64) *Store {
	if fontPx <= 0 {
		fontPx = DefaultFontSize
	}
	return &Store{
		surface:  surface,
		fontSize: fontPx,
		fill:     render.RGB{R: 204, G: 204, B: 204},
	}
}

// FontSize returns the banner glyph size in pixels.
func (st *Store) FontSize() float64 { return st.fontSize }

// SetFill sets the colour new particles start with and the colour
// static rendering always uses.
func (st *Store) SetFill(c render.RGB) { st.fill = c }

// Fill returns the base banner colour.
func (st *Store) Fill() render.RGB { return st.fill }

// SetStatic switches the store between animated and static drawing.
// Static drawing ignores offsets, effect colours and the type-in
// animation so the output is stable frame to frame.
func (st *Store) SetStatic(b bool) { st.static = b }

// Static reports whether static drawing is active.
func (st *Store) Static() bool { return st.static }

// Template returns the template text of the last build.
func (st *Store) Template() string { return st.template }

// Len returns the number of particles.
func (st *Store) Len() int { return len(st.particles) }

// At returns the i-th particle in storage order.
func (st *Store) At(i int) *Particle { return &st.particles[i] }

// Each calls fn for every particle in storage order.
func (st *Store) Each(fn func(p *Particle)) {
	for i := range st.particles {
		fn(&st.particles[i])
	}
}

// Build replaces all particles with one per non-whitespace rune of
// template. Every line is anchored to the horizontal origin that
// centres the first line, so the banner keeps its hand-tuned shape
// instead of centring each line independently. Returns the particle
// count.
func (st *Store) Build(template string) int {
	st.template = template
	st.particles = st.particles[:0]
	st.typeStart = typeStartUnset
	st.pulseActive = false

	lines := strings.Split(strings.Trim(template, "\n"), "\n")
	if len(lines) == 0 {
		return 0
	}

	w, _ := st.surface.Size()
	advance := render.CharAdvance(st.fontSize)
	rowH := render.RowHeight(st.fontSize)
	left := (w - float64(utf8.RuneCountInString(lines[0]))*advance) / 2
	top := st.fontSize * topOffsetRatio

	index := 0
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				col++
				continue
			}
			seed := row*100 + col
			p := Particle{
				Char:       ch,
				Original:   ch,
				BaseX:      left + float64(col)*advance,
				BaseY:      top + float64(row)*rowH,
				Color:      st.fill,
				Index:      index,
				Phase:      float64(seed%360) * math.Pi / 180,
				BlockIndex: col / blockWidth,
			}
			p.seedScratch(seed)
			p.X = p.BaseX
			p.Y = p.BaseY
			st.particles = append(st.particles, p)
			index++
			col++
		}
	}
	return len(st.particles)
}

// Resize rebuilds the particles from the last template so the banner
// re-centres on the surface's current size. The type-in animation
// replays from the next render pass.
func (st *Store) Resize() int {
	return st.Build(st.template)
}

// TopY returns the pixel Y of the first banner row.
func (st *Store) TopY() float64 {
	return st.fontSize * topOffsetRatio
}

// BottomY returns the pixel Y just below the last banner row of the
// current template. Layout below the banner starts here.
func (st *Store) BottomY() float64 {
	rows := len(strings.Split(strings.Trim(st.template, "\n"), "\n"))
	return st.TopY() + float64(rows)*render.RowHeight(st.fontSize)
}

// Render draws every particle for the given frame. The first pass
// after a build anchors the type-in animation, so particles fade in
// staggered by index regardless of the absolute frame number.
func (st *Store) Render(frame uint64) {
	if st.pulseActive && frame >= st.pulseUntil {
		st.pulseActive = false
		for i := range st.particles {
			st.particles[i].Highlighted = false
		}
	}
	if st.static {
		st.renderStatic()
		return
	}
	if st.typeStart == typeStartUnset {
		st.typeStart = frame
	}
	local := frame - st.typeStart

	s := st.surface
	s.SetFont(st.fontSize)
	for i := range st.particles {
		p := &st.particles[i]
		if !p.Typed && local > uint64(p.Index)*2 {
			p.Typed = true
			p.TargetOpacity = 1
		}
		p.Opacity += (p.TargetOpacity - p.Opacity) * 0.1

		p.X = p.BaseX + p.OffsetX
		p.Y = p.BaseY + p.OffsetY
		if p.Highlighted {
			s.SetFont(st.fontSize * highlightBoost)
		}
		s.SetFill(p.Color)
		s.SetAlpha(p.Opacity)
		s.FillText(p.Char, p.X, p.Y)
		if p.Highlighted {
			s.SetFont(st.fontSize)
		}
	}
	s.SetAlpha(1)
}

// renderStatic draws original glyphs at their anchors in the base
// colour at full opacity.
func (st *Store) renderStatic() {
	s := st.surface
	s.SetFont(st.fontSize)
	s.SetFill(st.fill)
	s.SetAlpha(1)
	for i := range st.particles {
		p := &st.particles[i]
		p.X = p.BaseX
		p.Y = p.BaseY
		s.FillText(p.Original, p.BaseX, p.BaseY)
	}
}

// QueryNearest returns the first particle in storage order whose
// anchor lies within threshold of (x, y), or nil when none does.
// Storage order, not distance, breaks ties between candidates.
func (st *Store) QueryNearest(x, y, threshold float64) *Particle {
	for i := range st.particles {
		p := &st.particles[i]
		if dist(p.BaseX, p.BaseY, x, y) <= threshold {
			return p
		}
	}
	return nil
}

// QueryRadius returns every particle whose anchor lies within radius
// of (x, y), in storage order.
func (st *Store) QueryRadius(x, y, radius float64) []*Particle {
	var out []*Particle
	for i := range st.particles {
		p := &st.particles[i]
		if dist(p.BaseX, p.BaseY, x, y) <= radius {
			out = append(out, p)
		}
	}
	return out
}

// PulseGlyph highlights every particle whose original rune folds to r
// until pulseFrames frames past frame. Returns how many lit up.
func (st *Store) PulseGlyph(r rune, frame uint64) int {
	folded := unicode.ToLower(r)
	n := 0
	for i := range st.particles {
		p := &st.particles[i]
		if unicode.ToLower(p.Original) == folded {
			p.Highlighted = true
			n++
		}
	}
	if n > 0 {
		st.pulseActive = true
		st.pulseUntil = frame + pulseFrames
	}
	return n
}

// SetHighlights replaces the highlighted set with exactly ps.
func (st *Store) SetHighlights(ps []*Particle) {
	st.pulseActive = false
	for i := range st.particles {
		st.particles[i].Highlighted = false
	}
	for _, p := range ps {
		p.Highlighted = true
	}
}

// ClearHighlights removes every highlight.
func (st *Store) ClearHighlights() {
	st.SetHighlights(nil)
}

// ResetTransient returns every particle to its resting appearance:
// original glyph, no offsets, no flags, scratch values re-derived
// from the particle index.
func (st *Store) ResetTransient() {
	st.pulseActive = false
	for i := range st.particles {
		p := &st.particles[i]
		p.Settle()
		p.Validated = false
		p.Highlighted = false
		p.Color = st.fill
		p.seedScratch(p.Index)
	}
}

func dist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}
