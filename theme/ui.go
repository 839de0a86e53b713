package theme

import "termfolio/render"

// UI is the fixed palette for everything that is not an effect: the
// backdrop, the status bar and the content pane.
type UI struct {
	Background  render.RGB
	StatusBar   render.RGB
	StatusText  render.RGB
	CommandText render.RGB
	ContentText render.RGB
	ContentDim  render.RGB
}

// DefaultUI returns the dark palette the app ships with.
func DefaultUI() UI {
	return UI{
		Background:  render.RGB{R: 12, G: 12, B: 24},
		StatusBar:   render.RGB{R: 32, G: 32, B: 48},
		StatusText:  render.RGB{R: 220, G: 220, B: 220},
		CommandText: render.RGB{R: 255, G: 255, B: 255},
		ContentText: render.RGB{R: 190, G: 190, B: 200},
		ContentDim:  render.RGB{R: 110, G: 110, B: 125},
	}
}

var modeColors = map[string]render.RGB{
	"nav":     {R: 100, G: 160, B: 255},
	"insert":  {R: 120, G: 220, B: 120},
	"select":  {R: 230, G: 200, B: 90},
	"command": {R: 200, G: 140, B: 255},
}

// ModeColor returns the indicator colour for a mode name, falling back
// to the status text colour for unknown modes.
func ModeColor(mode string) render.RGB {
	if c, ok := modeColors[mode]; ok {
		return c
	}
	return DefaultUI().StatusText
}
