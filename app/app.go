package app

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"termfolio/audio"
	"termfolio/banner"
	"termfolio/config"
	"termfolio/content"
	"termfolio/effects"
	"termfolio/engine"
	"termfolio/engine/status"
	"termfolio/modes"
	"termfolio/render"
	"termfolio/state"
	"termfolio/theme"
)

// App wires every subsystem together and owns their lifetimes. The
// screen is the only hard dependency; audio, persistence, clipboard
// and export all degrade to a status line message when they fail.
//
// mu serializes scene mutations between the frame task and the event
// goroutine. Everything that touches the store, the dispatcher, the
// view or the controller holds it.
type App struct {
	cfg config.Config
	ui  theme.UI

	screen   tcell.Screen
	surface  *render.Screen
	pipeline *render.Pipeline

	clock     *engine.PausableClock
	scheduler *engine.Scheduler
	registry  *status.Registry

	store      *banner.Store
	dispatcher *effects.Dispatcher
	controller *modes.Controller
	view       *content.View
	cues       *audio.Cues
	states     *state.Store

	mu sync.Mutex

	showHelp  bool
	showDebug bool

	// Select mode cell cursor.
	selCol, selRow int
	lastMode       modes.Mode

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates the terminal screen and builds the app on top of it.
// Screen construction is the only fatal path.
func New(cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(cfg, screen, state.NewStore()), nil
}

// NewWithScreen wires the app onto an already initialized screen,
// reading and writing persisted choices through states. Split from New
// so tests can drive a simulation screen and a throwaway state file.
func NewWithScreen(cfg config.Config, screen tcell.Screen, states *state.Store) *App {
	screen.EnableMouse()
	screen.EnableFocus()

	ui := theme.DefaultUI()
	surface := render.NewScreen(screen, cfg.General.FontSize, ui.Background)

	a := &App{
		cfg:      cfg,
		ui:       ui,
		screen:   screen,
		surface:  surface,
		pipeline: render.NewPipeline(surface),
		registry: status.NewRegistry(),
		cues:     audio.NewCues(),
		states:   states,
		quit:     make(chan struct{}),
	}
	a.clock = engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	a.scheduler = engine.NewScheduler(a.clock, cfg.FrameInterval(), a.registry)
	a.controller = modes.NewController(a.clock)
	a.view = content.NewView(content.DefaultSections()...)

	saved, _ := a.states.Load()

	a.store = banner.NewStore(surface, cfg.General.FontSize)
	a.store.Build(resolveTemplate(cfg.General.Banner, saved.Banner))
	a.layout()

	a.dispatcher = effects.NewDispatcher(theme.SinkFunc(func(s theme.Scheme) {
		a.store.SetFill(s.Base)
	}))
	if saved.Effect != "" {
		a.dispatcher.SelectByName(saved.Effect)
	}
	if cfg.General.Effect != "" {
		if !a.dispatcher.SelectByName(cfg.General.Effect) {
			log.Printf("unknown effect %q, keeping %s", cfg.General.Effect, a.dispatcher.ActiveName())
		}
	}
	a.dispatcher.OnChange = func(name string) {
		a.states.Mutate(func(d *state.Data) { d.Effect = name })
	}

	a.cues.SetMuted(saved.Muted || !cfg.General.Sound)

	if err := a.controller.ApplyKeymap(cfg.Keys); err != nil {
		log.Printf("keymap ignored: %v", err)
	}
	a.wireController()

	a.pipeline.Register(&bannerRenderer{a}, render.PriorityBanner)
	a.pipeline.Register(&contentRenderer{a}, render.PriorityContent)
	a.pipeline.Register(&overlayRenderer{a}, render.PriorityOverlay)
	a.pipeline.Register(&statusRenderer{a}, render.PriorityStatus)

	return a
}

// resolveTemplate picks the banner template: the last session's choice
// wins over the configured one, anything unknown falls back to the
// default.
func resolveTemplate(configured, saved string) string {
	if saved != "" {
		if t, ok := banner.LookupTemplate(saved); ok {
			return t
		}
	}
	if t, ok := banner.LookupTemplate(configured); ok {
		return t
	}
	return banner.DefaultTemplate
}

// wireController connects key intents to their scene mutations. All
// callbacks fire from HandleKey, which the event path runs under mu.
func (a *App) wireController() {
	c := a.controller
	c.OnScroll = func(lines int) { a.view.ScrollBy(lines) }
	c.OnJumpTop = func() { a.view.JumpTop() }
	c.OnJumpBottom = func() { a.view.JumpBottom() }
	c.OnCycleEffect = func(delta int) {
		a.dispatcher.Cycle(delta)
		a.cues.Play(audio.CueEffect)
	}
	c.OnModeChange = a.onModeChange
	c.OnInsertRune = func(r rune) {
		a.store.PulseGlyph(r, a.scheduler.Frame())
		a.cues.Play(audio.CueKeypress)
	}
	c.OnSelectMove = a.onSelectMove
	c.OnCommand = a.runCommand
}

func (a *App) onModeChange(m modes.Mode) {
	if a.lastMode == modes.ModeSelect && m != modes.ModeSelect {
		a.store.ClearHighlights()
		a.dispatcher.ClearPointer()
	}
	a.lastMode = m
	a.cues.Play(audio.CueMode)
	if m == modes.ModeSelect {
		a.centerSelectCursor()
		a.applySelectCursor()
	}
}

// centerSelectCursor parks the cell cursor mid-banner so the first
// hjkl press moves something visible.
func (a *App) centerSelectCursor() {
	w, _ := a.surface.Size()
	font := a.cfg.General.FontSize
	a.selCol = int(w / 2 / render.CharAdvance(font))
	a.selRow = int((a.store.TopY() + a.store.BottomY()) / 2 / render.RowHeight(font))
}

func (a *App) onSelectMove(dx, dy int) {
	w, h := a.surface.Size()
	font := a.cfg.General.FontSize
	cols := int(w / render.CharAdvance(font))
	rows := int(h / render.RowHeight(font))

	a.selCol += dx
	if a.selCol < 0 {
		a.selCol = 0
	}
	if a.selCol >= cols {
		a.selCol = cols - 1
	}
	a.selRow += dy
	if a.selRow < 0 {
		a.selRow = 0
	}
	if a.selRow >= rows {
		a.selRow = rows - 1
	}
	a.applySelectCursor()
}

// applySelectCursor feeds the cursor cell to the pointer and lights
// every glyph it captures.
func (a *App) applySelectCursor() {
	font := a.cfg.General.FontSize
	x := float64(a.selCol) * render.CharAdvance(font)
	y := float64(a.selRow) * render.RowHeight(font)
	a.dispatcher.SetPointer(x, y)
	a.store.SetHighlights(a.store.QueryRadius(x, y, effects.DefaultHoverThreshold))
}

// layout sizes the content viewport to the rows between the banner and
// the status line.
func (a *App) layout() {
	_, h := a.surface.Size()
	rowH := render.RowHeight(a.cfg.General.FontSize)
	rows := int(h / rowH)
	a.view.SetViewport(rows - a.contentTopRow() - 2)
}

// contentTopRow returns the first terminal row of the content pane,
// one blank row below the banner.
func (a *App) contentTopRow() int {
	return int(a.store.BottomY()/render.RowHeight(a.cfg.General.FontSize)) + 1
}

// RequestQuit asks the event loop to exit. Safe from any goroutine,
// idempotent.
func (a *App) RequestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Teardown unwinds every subsystem. Safe to call once Run has
// returned, or instead of Run after a failed startup.
func (a *App) Teardown() {
	a.RequestQuit()
	a.scheduler.Teardown()
	a.controller.Teardown()
	a.cues.Close()
	a.screen.Fini()
}
