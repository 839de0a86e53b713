package render

// Call records one FillText invocation with the state active at call time
type Call struct {
	Rune  rune
	X, Y  float64
	Fill  RGB
	Alpha float64
	Font  float64
}

// MemorySurface is an in-memory Surface for tests
// Clear drops recorded calls so assertions see only the latest frame
type MemorySurface struct {
	W, H    float64
	Calls   []Call
	Clears  int
	Flushes int

	font  float64
	fill  RGB
	alpha float64
}

// NewMemorySurface creates a surface with the given pixel dimensions
func NewMemorySurface(w, h float64) *MemorySurface {
	return &MemorySurface{
		W:     w,
		H:     h,
		font:  16,
		fill:  RGB{255, 255, 255},
		alpha: 1.0,
	}
}

func (m *MemorySurface) Clear() {
	m.Clears++
	m.Calls = m.Calls[:0]
}

func (m *MemorySurface) SetFont(px float64) {
	m.font = px
}

func (m *MemorySurface) SetFill(c RGB) {
	m.fill = c
}

func (m *MemorySurface) SetAlpha(a float64) {
	m.alpha = a
}

func (m *MemorySurface) FillText(r rune, x, y float64) {
	m.Calls = append(m.Calls, Call{
		Rune:  r,
		X:     x,
		Y:     y,
		Fill:  m.fill,
		Alpha: m.alpha,
		Font:  m.font,
	})
}

func (m *MemorySurface) Size() (float64, float64) {
	return m.W, m.H
}

func (m *MemorySurface) Flush() {
	m.Flushes++
}

// CallFor returns the recorded call nearest to (x, y), or false if nothing was drawn
func (m *MemorySurface) CallFor(x, y float64) (Call, bool) {
	if len(m.Calls) == 0 {
		return Call{}, false
	}
	best := 0
	bestDist := -1.0
	for i, c := range m.Calls {
		dx := c.X - x
		dy := c.Y - y
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return m.Calls[best], true
}

// Text returns all drawn runes in call order
func (m *MemorySurface) Text() string {
	rs := make([]rune, 0, len(m.Calls))
	for _, c := range m.Calls {
		rs = append(rs, c.Rune)
	}
	return string(rs)
}
