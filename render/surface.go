package render

// Font metrics as fractions of the font size in pixels
// One glyph cell is charAdvanceRatio*font wide and rowHeightRatio*font tall
const (
	charAdvanceRatio = 0.6
	rowHeightRatio   = 1.2
)

// CharAdvance returns the horizontal pen advance for one glyph at the given font size
func CharAdvance(fontPx float64) float64 {
	return fontPx * charAdvanceRatio
}

// RowHeight returns the vertical distance between text rows at the given font size
func RowHeight(fontPx float64) float64 {
	return fontPx * rowHeightRatio
}

// Surface is the drawing target for all animation output
// Coordinates are pixels with the origin at the top-left corner
type Surface interface {
	// Clear erases the full surface to the background color
	Clear()

	// SetFont selects the glyph size in pixels for subsequent FillText calls
	SetFont(px float64)

	// SetFill selects the foreground color for subsequent FillText calls
	SetFill(c RGB)

	// SetAlpha sets the global opacity (0.0-1.0) for subsequent FillText calls
	SetAlpha(a float64)

	// FillText draws a single glyph at pixel position (x, y)
	FillText(r rune, x, y float64)

	// Size returns the surface dimensions in pixels
	Size() (w, h float64)

	// Flush presents the composed frame
	Flush()
}

// FillString draws str left to right starting at (x, y)
// Advance is derived from fontPx, which must match the surface's current font
func FillString(s Surface, str string, x, y, fontPx float64) {
	adv := CharAdvance(fontPx)
	i := 0
	for _, r := range str {
		s.FillText(r, x+float64(i)*adv, y)
		i++
	}
}
