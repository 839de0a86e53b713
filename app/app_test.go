package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"termfolio/banner"
	"termfolio/config"
	"termfolio/modes"
	"termfolio/state"
)

// newSimScreen returns an initialized 80x24 simulation screen that is
// cleaned up with the test.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	return sim
}

// newTestApp builds an app on a simulation screen with sound off and
// persistence disabled.
func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.General.Sound = false
	return NewWithScreen(cfg, newSimScreen(t), state.NewStoreAt(""))
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNewBuildsDefaultBanner(t *testing.T) {
	a := newTestApp(t)

	if a.store.Len() == 0 {
		t.Fatal("expected banner particles after construction")
	}
	if a.store.Template() != banner.DefaultTemplate {
		t.Error("expected the default template")
	}
	if a.scheduler.Interval() != time.Second/30 {
		t.Errorf("Interval() = %v, want %v", a.scheduler.Interval(), time.Second/30)
	}
}

func TestSavedStateRestored(t *testing.T) {
	st := state.NewStoreAt(filepath.Join(t.TempDir(), "state.toml"))
	st.Save(state.Data{Effect: "wave", Banner: "compact", Muted: true})

	cfg := config.Default()
	a := NewWithScreen(cfg, newSimScreen(t), st)

	if got := a.dispatcher.ActiveName(); got != "wave" {
		t.Errorf("ActiveName() = %q, want wave", got)
	}
	want, _ := banner.LookupTemplate("compact")
	if a.store.Template() != want {
		t.Error("expected the saved banner template")
	}
	if !a.cues.Muted() {
		t.Error("expected saved mute to stick")
	}
}

func TestConfigEffectBeatsSavedState(t *testing.T) {
	st := state.NewStoreAt(filepath.Join(t.TempDir(), "state.toml"))
	st.Save(state.Data{Effect: "wave"})

	cfg := config.Default()
	cfg.General.Sound = false
	cfg.General.Effect = "pulse"
	a := NewWithScreen(cfg, newSimScreen(t), st)

	if got := a.dispatcher.ActiveName(); got != "pulse" {
		t.Errorf("ActiveName() = %q, want pulse", got)
	}
}

func TestEffectSelectionPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	cfg := config.Default()
	cfg.General.Sound = false
	a := NewWithScreen(cfg, newSimScreen(t), state.NewStoreAt(path))

	a.ExecuteCommand("effect binary")

	d, ok := state.NewStoreAt(path).Load()
	if !ok || d.Effect != "binary" {
		t.Errorf("persisted effect = %q (ok=%v), want binary", d.Effect, ok)
	}
}

func TestKeyScrollsContent(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(key('j'))

	if got := a.view.Target(); got != 3 {
		t.Errorf("Target() = %v, want 3", got)
	}
}

func TestKeyCyclesEffect(t *testing.T) {
	a := newTestApp(t)
	first := a.dispatcher.Active()

	a.handleEvent(key('n'))

	if a.dispatcher.Active() == first {
		t.Error("expected n to advance the effect")
	}
}

func TestCtrlCQuits(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))

	select {
	case <-a.quit:
	default:
		t.Fatal("expected ctrl-c to request quit")
	}
}

func TestResizeRecentersBanner(t *testing.T) {
	a := newTestApp(t)
	sim := a.screen.(tcell.SimulationScreen)
	before := a.store.At(0).BaseX

	sim.SetSize(120, 40)
	a.handleEvent(tcell.NewEventResize(120, 40))

	if a.store.At(0).BaseX == before {
		t.Error("expected resize to move the banner anchor")
	}
}

func TestMouseDrivesPointer(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(tcell.NewEventMouse(12, 3, tcell.ButtonNone, tcell.ModNone))

	x, y, active := a.dispatcher.Pointer()
	if !active {
		t.Fatal("expected an active pointer after mouse movement")
	}
	px, py := a.surface.PixelAt(12, 3)
	if x != px || y != py {
		t.Errorf("pointer = (%v, %v), want (%v, %v)", x, y, px, py)
	}
}

func TestFocusPausesScheduler(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(tcell.NewEventFocus(false))
	if !a.scheduler.IsPaused() {
		t.Fatal("expected blur to pause")
	}
	a.handleEvent(tcell.NewEventFocus(true))
	if a.scheduler.IsPaused() {
		t.Fatal("expected focus to resume")
	}
}

func TestFocusIgnoredWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.General.Sound = false
	cfg.General.PauseOnBlur = false
	a := NewWithScreen(cfg, newSimScreen(t), state.NewStoreAt(""))

	a.handleEvent(tcell.NewEventFocus(false))

	if a.scheduler.IsPaused() {
		t.Error("expected blur to be ignored")
	}
}

func TestSelectModeMovesCursor(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(key('v'))
	if a.controller.Mode() != modes.ModeSelect {
		t.Fatalf("Mode() = %v, want select", a.controller.Mode())
	}
	if _, _, active := a.dispatcher.Pointer(); !active {
		t.Fatal("expected the select cursor to drive the pointer")
	}

	col := a.selCol
	a.handleEvent(key('l'))
	if a.selCol != col+1 {
		t.Errorf("selCol = %d, want %d", a.selCol, col+1)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if _, _, active := a.dispatcher.Pointer(); active {
		t.Error("expected escape to release the pointer")
	}
	highlighted := 0
	a.store.Each(func(p *banner.Particle) {
		if p.Highlighted {
			highlighted++
		}
	})
	if highlighted != 0 {
		t.Errorf("%d particles still highlighted after escape", highlighted)
	}
}

func TestInsertModePulsesGlyphs(t *testing.T) {
	a := newTestApp(t)
	a.ExecuteCommand("banner compact")

	a.handleEvent(key('i'))
	if a.controller.Mode() != modes.ModeInsert {
		t.Fatalf("Mode() = %v, want insert", a.controller.Mode())
	}
	a.handleEvent(key('e'))

	highlighted := 0
	a.store.Each(func(p *banner.Particle) {
		if p.Highlighted {
			highlighted++
		}
	})
	if highlighted == 0 {
		t.Error("expected typing e to pulse matching glyphs")
	}
}

func TestFrameTickDrawsStatusBar(t *testing.T) {
	a := newTestApp(t)

	if err := a.frameTick(1); err != nil {
		t.Fatalf("frameTick: %v", err)
	}

	sim := a.screen.(tcell.SimulationScreen)
	_, rows := sim.Size()
	ch, _, _, _ := sim.GetContent(1, rows-1)
	if ch != '[' {
		t.Errorf("status bar cell = %q, want [", ch)
	}
}

func TestExportCommandWritesFile(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "snap.png")

	a.ExecuteCommand("export " + path)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected a png at %s: %v", path, err)
	}
	if got := a.controller.StatusLine(); got != "exported "+path {
		t.Errorf("StatusLine() = %q", got)
	}
}
