package app

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"

	"termfolio/audio"
	"termfolio/core"
	"termfolio/engine"
)

// Run starts the frame task and blocks in the event loop until quit.
// The caller still owns Teardown.
func (a *App) Run() {
	if err := a.cues.Init(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}

	a.scheduler.Register(engine.NewTask(a.frameTick))
	if limit := a.cfg.Memory.SoftLimitBytes(); limit > 0 {
		watcher := engine.NewMemoryWatcher(a.registry,
			uint64(a.cfg.Memory.SampleFrames), limit, a.onMemoryPressure)
		a.scheduler.Register(watcher)
	}

	a.cues.Play(audio.CueStartup)

	events := make(chan tcell.Event, 64)
	core.Go(func() { a.poll(events) })

	for {
		select {
		case <-a.quit:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.handleEvent(ev)
		}
	}
}

// poll forwards terminal events until the screen closes or quit.
func (a *App) poll(events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-a.quit:
			return
		}
	}
}

// frameTick is the single scheduler task: effect pass, scroll easing,
// then the full render pass. Runs once per frame on the loop goroutine.
func (a *App) frameTick(frame uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dispatcher.Apply(a.store, frame)
	a.view.Update(a.scheduler.Interval().Seconds())
	a.pipeline.RenderFrame(frame)
	return nil
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.RequestQuit()
			return
		}
		a.mu.Lock()
		a.controller.HandleKey(ev)
		a.mu.Unlock()

	case *tcell.EventResize:
		a.mu.Lock()
		a.store.Resize()
		a.layout()
		a.dispatcher.ClearPointer()
		a.mu.Unlock()
		a.screen.Sync()

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.surface.PixelAt(col, row)
		a.mu.Lock()
		a.dispatcher.SetPointer(x, y)
		a.mu.Unlock()

	case *tcell.EventFocus:
		if !a.cfg.General.PauseOnBlur {
			return
		}
		if ev.Focused {
			a.scheduler.Resume()
		} else {
			a.scheduler.Pause()
		}
	}
}

// onMemoryPressure fires from the watcher when the heap crosses the
// soft limit. The frame loop pauses, so recovery has to be watched
// from its own goroutine.
func (a *App) onMemoryPressure(heap uint64) {
	a.scheduler.Pause()
	a.mu.Lock()
	a.controller.Flash(fmt.Sprintf("paused: heap %d MiB over limit", heap>>20))
	a.mu.Unlock()
	core.Go(a.waitForMemory)
}

// waitForMemory polls the heap until it drops below 80% of the soft
// limit, then resumes the frame loop.
func (a *App) waitForMemory() {
	limit := a.cfg.Memory.SoftLimitBytes()
	for {
		select {
		case <-a.quit:
			return
		case <-time.After(time.Second):
		}
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		if ms.HeapAlloc < limit/5*4 {
			a.scheduler.Resume()
			return
		}
	}
}
