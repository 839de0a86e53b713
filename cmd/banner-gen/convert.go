package main

import (
	"image"
	"image/color"
	"strings"
)

// quadrantGlyphs maps 4-bit coverage patterns to block glyphs.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR.
var quadrantGlyphs = [16]rune{
	' ', // 0000
	'▘', // 0001
	'▝', // 0010
	'▀', // 0011
	'▖', // 0100
	'▌', // 0101
	'▞', // 0110
	'▛', // 0111
	'▗', // 1000
	'▚', // 1001
	'▐', // 1010
	'▜', // 1011
	'▄', // 1100
	'▙', // 1101
	'▟', // 1110
	'█', // 1111
}

// cellAspect compensates for terminal cells being about twice as tall
// as wide, the same proportion the banner's font metrics assume.
const cellAspect = 0.5

// Render converts img into banner template text cols columns wide.
// Every cell samples a 2x2 pixel block; quadrants whose luminance
// clears threshold count as ink. Trailing blanks and empty edge rows
// are dropped so the template hugs its art.
func Render(img image.Image, cols int, threshold float64, invert bool) string {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 || cols < 1 {
		return ""
	}

	rows := int(float64(cols) * float64(srcH) / float64(srcW) * cellAspect)
	if rows < 1 {
		rows = 1
	}
	gridW, gridH := cols*2, rows*2

	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	var row strings.Builder
	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		row.Reset()
		for x := 0; x < cols; x++ {
			pattern := 0
			for i, off := range offsets {
				sx := b.Min.X + ((x*2+off[0])*srcW+srcW/2)/gridW
				sy := b.Min.Y + ((y*2+off[1])*srcH+srcH/2)/gridH
				if sx >= b.Max.X {
					sx = b.Max.X - 1
				}
				if sy >= b.Max.Y {
					sy = b.Max.Y - 1
				}
				if inked(img.At(sx, sy), threshold, invert) {
					pattern |= 1 << i
				}
			}
			row.WriteRune(quadrantGlyphs[pattern])
		}
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}

	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// inked decides whether one sampled pixel contributes coverage.
// Transparent pixels never do, inverted or not.
func inked(c color.Color, threshold float64, invert bool) bool {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return false
	}
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	on := lum >= threshold
	if invert {
		on = !on
	}
	return on
}
