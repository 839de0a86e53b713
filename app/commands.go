package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"termfolio/audio"
	"termfolio/banner"
	"termfolio/config"
	"termfolio/export"
	"termfolio/state"
)

// ExecuteCommand runs one command line as typed after the colon.
// Outcomes, including errors, land on the status line; nothing here is
// fatal.
func (a *App) ExecuteCommand(cmd string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runCommand(cmd)
}

// runCommand is the mu-held core of ExecuteCommand; command mode calls
// it directly from the key path.
func (a *App) runCommand(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}
	arg := strings.Join(fields[1:], " ")

	switch fields[0] {
	case "q", "quit":
		a.RequestQuit()
	case "h", "help", "?":
		a.showHelp = !a.showHelp
		a.showDebug = false
	case "d", "debug":
		a.showDebug = !a.showDebug
		a.showHelp = false
	case "effect":
		a.cmdEffect(arg)
	case "banner":
		a.cmdBanner(arg)
	case "export":
		a.cmdExport(arg)
	case "copy":
		a.cmdCopy()
	case "reset":
		a.store.ResetTransient()
		a.dispatcher.ClearPointer()
		a.controller.Flash("reset")
	case "sound":
		a.cmdSound(arg)
	case "fps":
		a.cmdFPS(arg)
	default:
		a.fail("unknown command: " + fields[0])
	}
}

// fail reports a command error on the status line with the error cue.
func (a *App) fail(msg string) {
	a.controller.Flash(msg)
	a.cues.Play(audio.CueError)
}

// cmdEffect switches the active effect by name or by its 1-based
// position in the effect list.
func (a *App) cmdEffect(arg string) {
	if arg == "" {
		a.fail("effect: name or number required")
		return
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > a.dispatcher.Count() {
			a.fail(fmt.Sprintf("effect: no effect %d", n))
			return
		}
		a.dispatcher.Select(n - 1)
	} else if !a.dispatcher.SelectByName(arg) {
		a.fail("effect: unknown effect " + arg)
		return
	}
	a.controller.Flash("effect " + a.dispatcher.ActiveName())
	a.cues.Play(audio.CueEffect)
}

func (a *App) cmdBanner(arg string) {
	if arg == "" {
		a.fail("banner: name required, one of " + strings.Join(banner.TemplateNames(), " "))
		return
	}
	tpl, ok := banner.LookupTemplate(arg)
	if !ok {
		a.fail("banner: unknown banner " + arg)
		return
	}
	a.store.Build(tpl)
	a.layout()
	a.states.Mutate(func(d *state.Data) { d.Banner = arg })
	a.controller.Flash("banner " + arg)
}

func (a *App) cmdExport(arg string) {
	path := arg
	if path == "" {
		path = export.DefaultPath(time.Now())
	}
	w, h := a.surface.Size()
	m := export.Metrics{Width: w, Height: h, FontSize: a.store.FontSize()}
	if err := export.WritePNG(path, a.store, a.surface.Background(), m); err != nil {
		a.fail("export: " + err.Error())
		return
	}
	a.controller.Flash("exported " + path)
}

func (a *App) cmdCopy() {
	if err := export.CopyFrame(a.store); err != nil {
		a.fail("copy: " + err.Error())
		return
	}
	a.controller.Flash("copied banner text")
}

func (a *App) cmdSound(arg string) {
	var muted bool
	switch arg {
	case "on":
		muted = false
	case "off":
		muted = true
	case "":
		muted = !a.cues.Muted()
	default:
		a.fail("sound: want on or off")
		return
	}
	a.cues.SetMuted(muted)
	a.states.Mutate(func(d *state.Data) { d.Muted = muted })
	if muted {
		a.controller.Flash("sound off")
		return
	}
	a.controller.Flash("sound on")
	a.cues.Play(audio.CueMode)
}

func (a *App) cmdFPS(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > config.MaxFPS {
		a.fail(fmt.Sprintf("fps: want a number from 1 to %d", config.MaxFPS))
		return
	}
	a.cfg.General.FPS = n
	a.scheduler.SetInterval(a.cfg.FrameInterval())
	a.controller.Flash("fps " + arg)
}
