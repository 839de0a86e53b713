package app

import (
	"fmt"
	"strings"

	"termfolio/modes"
	"termfolio/render"
	"termfolio/theme"
)

// bannerRenderer draws the particle banner. The store draws onto the
// shared surface itself; this only sequences it into the pipeline.
type bannerRenderer struct{ app *App }

func (r *bannerRenderer) Render(frame uint64, s render.Surface) {
	r.app.store.Render(frame)
}

// contentRenderer draws the visible content window below the banner.
// Hidden while an overlay panel is up.
type contentRenderer struct{ app *App }

func (r *contentRenderer) IsVisible() bool {
	return !r.app.showHelp && !r.app.showDebug
}

func (r *contentRenderer) Render(frame uint64, s render.Surface) {
	a := r.app
	font := a.cfg.General.FontSize
	rowH := render.RowHeight(font)
	top := float64(a.contentTopRow()) * rowH
	left := render.CharAdvance(font) * 2

	s.SetFont(font)
	s.SetAlpha(1)
	for i, line := range a.view.VisibleLines() {
		if line.Heading {
			s.SetFill(a.dispatcher.Scheme().Accent)
		} else {
			s.SetFill(a.ui.ContentText)
		}
		render.FillString(s, line.Text, left, top+float64(i)*rowH, font)
	}
}

// overlayRenderer draws the help or debug panel in place of the
// content pane. Lines without leading whitespace render as headings.
type overlayRenderer struct{ app *App }

func (r *overlayRenderer) IsVisible() bool {
	return r.app.showHelp || r.app.showDebug
}

func (r *overlayRenderer) Render(frame uint64, s render.Surface) {
	a := r.app
	lines := helpLines
	if a.showDebug {
		lines = a.debugLines()
	}

	font := a.cfg.General.FontSize
	rowH := render.RowHeight(font)
	top := float64(a.contentTopRow()) * rowH
	left := render.CharAdvance(font) * 4

	s.SetFont(font)
	s.SetAlpha(1)
	for i, line := range lines {
		if line != "" && !strings.HasPrefix(line, " ") {
			s.SetFill(a.dispatcher.Scheme().Accent)
		} else {
			s.SetFill(a.ui.StatusText)
		}
		render.FillString(s, line, left, top+float64(i)*rowH, font)
	}
}

func (a *App) debugLines() []string {
	lines := []string{"debug"}
	for _, l := range a.registry.Snapshot() {
		lines = append(lines, fmt.Sprintf("  %-20s %s", l.Name, l.Value))
	}
	return lines
}

var helpLines = []string{
	"keys",
	"  j / k          scroll down / up",
	"  g g / G        jump top / bottom",
	"  n / N          next / previous effect",
	"  i              insert mode, typed runes pulse the banner",
	"  v              select mode, hjkl moves the cursor",
	"  :              command mode",
	"  esc            back to nav",
	"",
	"commands",
	"  :q  :quit          leave",
	"  :effect <name|n>   switch effect",
	"  :banner <name>     switch banner",
	"  :export [file]     write a png snapshot",
	"  :copy              copy banner text to the clipboard",
	"  :reset             settle the banner",
	"  :sound on|off      audio cues",
	"  :fps <n>           frame rate",
	"  :h  :help  :?      this panel",
	"  :d  :debug         metrics panel",
}

// statusRenderer draws the bottom line: mode chip, transient status or
// command buffer, and the active effect right-aligned.
type statusRenderer struct{ app *App }

func (r *statusRenderer) Render(frame uint64, s render.Surface) {
	a := r.app
	font := a.cfg.General.FontSize
	adv := render.CharAdvance(font)
	rowH := render.RowHeight(font)
	w, h := s.Size()
	y := (float64(int(h/rowH)) - 1) * rowH

	s.SetFont(font)
	s.SetAlpha(1)

	mode := a.controller.Mode().String()
	s.SetFill(theme.ModeColor(mode))
	render.FillString(s, "["+mode+"]", adv, y, font)
	x := adv * float64(len(mode)+4)

	if a.controller.Mode() == modes.ModeCommand {
		s.SetFill(a.ui.CommandText)
		render.FillString(s, ":"+a.controller.CommandBuffer(), x, y, font)
	} else if line := a.controller.StatusLine(); line != mode {
		s.SetFill(a.ui.StatusText)
		render.FillString(s, line, x, y, font)
	}

	name := a.dispatcher.ActiveName()
	s.SetFill(a.ui.ContentDim)
	render.FillString(s, name, w-adv*float64(len(name)+2), y, font)
}
