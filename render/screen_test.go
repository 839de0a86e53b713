package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, fontPx float64, bg RGB) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	return NewScreen(sim, fontPx, bg), sim
}

func TestScreenCellMapping(t *testing.T) {
	// Font 10px: advance 6px, row height 12px
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{"Origin", 0, 0, 0, 0},
		{"Exact cell", 12.0, 24.0, 2, 2},
		{"Rounds up inside cell", 11.9, 23.9, 2, 2},
		{"Rounds down inside cell", 2.9, 5.9, 0, 0},
		{"Deep cell", 60.0, 120.0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := s.CellAt(tt.x, tt.y)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("Expected cell (%d,%d) for pixel (%.1f,%.1f), got (%d,%d)",
					tt.wantCol, tt.wantRow, tt.x, tt.y, col, row)
			}
		})
	}
}

func TestScreenFillTextPlacesRune(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	s.SetFill(RGB{255, 0, 0})
	s.FillText('X', 12.0, 24.0)

	r, _, _, _ := sim.GetContent(2, 2)
	if r != 'X' {
		t.Errorf("Expected 'X' at cell (2,2), got %q", r)
	}
}

func TestScreenAlphaBlendsTowardBackground(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	s.SetFill(RGB{255, 255, 255})
	s.SetAlpha(0.5)
	s.FillText('A', 0, 0)

	_, _, style, _ := sim.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	r, g, b := fg.RGB()

	if r != 127 || g != 127 || b != 127 {
		t.Errorf("Expected half-blended gray (127,127,127), got (%d,%d,%d)", r, g, b)
	}
}

func TestScreenAlphaClamps(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	s.SetFill(RGB{200, 200, 200})
	s.SetAlpha(3.0)
	s.FillText('A', 0, 0)

	_, _, style, _ := sim.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	r, g, b := fg.RGB()

	if r != 200 || g != 200 || b != 200 {
		t.Errorf("Expected fully opaque fill (200,200,200), got (%d,%d,%d)", r, g, b)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	// None of these should panic or draw
	s.FillText('A', -100, 0)
	s.FillText('B', 0, -100)
	s.FillText('C', 1e6, 0)
	s.FillText('D', 0, 1e6)

	r, _, _, _ := sim.GetContent(0, 0)
	if r == 'A' || r == 'B' {
		t.Errorf("Expected out-of-bounds draws to be dropped, got %q at origin", r)
	}
}

func TestScreenEnlargedFontIsBold(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	s.SetFont(14)
	s.FillText('A', 0, 0)

	_, _, style, _ := sim.GetContent(0, 0)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute for font above base size")
	}

	s.SetFont(10)
	s.FillText('B', 6.0, 0)

	_, _, style, _ = sim.GetContent(1, 0)
	_, _, attrs = style.Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("Expected no bold attribute at base font size")
	}
}

func TestScreenSizeInPixels(t *testing.T) {
	s, sim := newTestScreen(t, 10, RGB{0, 0, 0})
	defer sim.Fini()

	w, h := s.Size()
	// 80 cols * 6px, 24 rows * 12px
	if w != 480 || h != 288 {
		t.Errorf("Expected 480x288 pixels, got %.1fx%.1f", w, h)
	}
}

func TestFillString(t *testing.T) {
	m := NewMemorySurface(200, 100)

	FillString(m, "hi!", 10, 20, 10)

	if len(m.Calls) != 3 {
		t.Fatalf("Expected 3 draw calls, got %d", len(m.Calls))
	}
	if m.Text() != "hi!" {
		t.Errorf("Expected drawn text %q, got %q", "hi!", m.Text())
	}
	// Advance for font 10 is 6px
	for i, c := range m.Calls {
		wantX := 10 + float64(i)*6
		if c.X != wantX || c.Y != 20 {
			t.Errorf("Expected call %d at (%.1f,20), got (%.1f,%.1f)", i, wantX, c.X, c.Y)
		}
	}
}
