package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Screen adapts a tcell.Screen to the pixel-based Surface interface
// Pixel coordinates divide by the base font cell metrics to select a terminal cell,
// so callers that lay out text on the font grid land on exact cells
type Screen struct {
	screen   tcell.Screen
	baseFont float64
	font     float64
	fill     RGB
	alpha    float64
	bg       RGB
}

// NewScreen wraps screen with the given base font size in pixels
func NewScreen(screen tcell.Screen, fontPx float64, bg RGB) *Screen {
	return &Screen{
		screen:   screen,
		baseFont: fontPx,
		font:     fontPx,
		fill:     RGB{255, 255, 255},
		alpha:    1.0,
		bg:       bg,
	}
}

// SetBackground changes the color Clear fills with and alpha blends toward
func (s *Screen) SetBackground(bg RGB) {
	s.bg = bg
}

// Background returns the current background color
func (s *Screen) Background() RGB {
	return s.bg
}

// Clear erases the screen to the background color
func (s *Screen) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(RGBToTcell(s.bg)))
}

// SetFont selects the glyph size for subsequent draws
func (s *Screen) SetFont(px float64) {
	s.font = px
}

// SetFill selects the foreground color for subsequent draws
func (s *Screen) SetFill(c RGB) {
	s.fill = c
}

// SetAlpha sets the global opacity for subsequent draws, clamped to [0, 1]
func (s *Screen) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.alpha = a
}

// FillText draws one glyph at pixel position (x, y)
// Terminal cells have no partial opacity, so alpha blends the fill toward the background
func (s *Screen) FillText(r rune, x, y float64) {
	col := int(math.Round(x / CharAdvance(s.baseFont)))
	row := int(math.Round(y / RowHeight(s.baseFont)))

	w, h := s.screen.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}

	fg := Blend(s.bg, s.fill, s.alpha)
	style := tcell.StyleDefault.Background(RGBToTcell(s.bg)).Foreground(RGBToTcell(fg))

	// Glyphs cannot scale in a terminal, approximate enlarged text with bold
	if s.font > s.baseFont {
		style = style.Bold(true)
	}

	s.screen.SetContent(col, row, r, nil, style)
}

// Size reports the surface dimensions in pixels
func (s *Screen) Size() (float64, float64) {
	w, h := s.screen.Size()
	return float64(w) * CharAdvance(s.baseFont), float64(h) * RowHeight(s.baseFont)
}

// Flush presents the composed frame
func (s *Screen) Flush() {
	s.screen.Show()
}

// CellAt converts pixel coordinates to the terminal cell they map to
func (s *Screen) CellAt(x, y float64) (col, row int) {
	return int(math.Round(x / CharAdvance(s.baseFont))), int(math.Round(y / RowHeight(s.baseFont)))
}

// PixelAt converts a terminal cell to the pixel coordinates of its origin
func (s *Screen) PixelAt(col, row int) (x, y float64) {
	return float64(col) * CharAdvance(s.baseFont), float64(row) * RowHeight(s.baseFont)
}
