package export

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"termfolio/banner"
	"termfolio/render"
)

// Metrics carries the pixel geometry of the exported frame.
type Metrics struct {
	Width    float64
	Height   float64
	FontSize float64
}

// DefaultPath builds a timestamped PNG name in the working directory.
func DefaultPath(now time.Time) string {
	return fmt.Sprintf("termfolio-%s.png", now.Format("20060102-150405"))
}

// WritePNG renders the current particle field to a PNG file. Each glyph
// is drawn at its anchor plus effect offset with its current color and
// opacity over the given background.
func WritePNG(path string, st *banner.Store, bg render.RGB, m Metrics) error {
	if st.Len() == 0 {
		return fmt.Errorf("nothing to export")
	}
	if m.Width < 1 || m.Height < 1 {
		return fmt.Errorf("export size %gx%g too small", m.Width, m.Height)
	}

	dc := gg.NewContext(int(m.Width), int(m.Height))
	dc.SetRGB(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    m.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	st.Each(func(p *banner.Particle) {
		if p.Opacity < 0.01 {
			return
		}
		a := p.Opacity
		if a > 1 {
			a = 1
		}
		dc.SetRGBA(float64(p.Color.R)/255, float64(p.Color.G)/255, float64(p.Color.B)/255, a)
		// DrawString places y at the baseline, matching the surface
		// FillText convention.
		dc.DrawString(string(p.Char), p.BaseX+p.OffsetX, p.BaseY+p.OffsetY)
	})

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// FrameText lays the current glyphs back onto a character grid. Effect
// offsets are ignored; the grid reflects the anchor cells, so the text
// stays aligned however far the particles have drifted.
func FrameText(st *banner.Store) string {
	if st.Len() == 0 {
		return ""
	}

	adv := render.CharAdvance(st.FontSize())
	rowH := render.RowHeight(st.FontSize())

	minX := math.Inf(1)
	minY := math.Inf(1)
	st.Each(func(p *banner.Particle) {
		if p.BaseX < minX {
			minX = p.BaseX
		}
		if p.BaseY < minY {
			minY = p.BaseY
		}
	})

	type cell struct{ row, col int }
	cells := map[cell]rune{}
	maxRow, maxCol := 0, 0
	st.Each(func(p *banner.Particle) {
		c := cell{
			row: int(math.Round((p.BaseY - minY) / rowH)),
			col: int(math.Round((p.BaseX - minX) / adv)),
		}
		cells[c] = p.Char
		if c.row > maxRow {
			maxRow = c.row
		}
		if c.col > maxCol {
			maxCol = c.col
		}
	})

	var out []byte
	for row := 0; row <= maxRow; row++ {
		line := make([]rune, 0, maxCol+1)
		for col := 0; col <= maxCol; col++ {
			if r, ok := cells[cell{row, col}]; ok {
				for len(line) < col {
					line = append(line, ' ')
				}
				line = append(line, r)
			}
		}
		out = append(out, []byte(string(line))...)
		if row < maxRow {
			out = append(out, '\n')
		}
	}
	return string(out)
}
