package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"termfolio/core"
	"termfolio/engine/status"
)

// DefaultFrameInterval is the frame period when no rate is configured (~30 FPS)
const DefaultFrameInterval = 33 * time.Millisecond

// ErrTaskDone is returned by a task to unregister itself after a normal finish
var ErrTaskDone = errors.New("task done")

// Task is one unit of per-frame work driven by the Scheduler
// Returning nil keeps the task scheduled, ErrTaskDone removes it quietly,
// any other error removes it and logs the failure. Tasks are compared by
// identity, so implementations should be pointers
type Task interface {
	Tick(frame uint64) error
}

// NewTask wraps fn in a registrable Task with its own identity
func NewTask(fn func(frame uint64) error) Task {
	return &funcTask{fn: fn}
}

type funcTask struct {
	fn func(frame uint64) error
}

func (t *funcTask) Tick(frame uint64) error {
	return t.fn(frame)
}

type taskEntry struct {
	id   uint64
	task Task
}

// Scheduler drives all registered tasks on a fixed frame interval
// The loop goroutine starts when the first task registers and stops itself
// when the last one leaves. Pause freezes the attached clock so deadline
// math never burst-ticks after a resume
type Scheduler struct {
	clock *PausableClock

	mu       sync.Mutex
	interval time.Duration
	tasks    []taskEntry
	nextID   uint64
	stopChan chan struct{}
	running  bool

	frameCount atomic.Uint64
	paused     atomic.Bool
	wg         sync.WaitGroup

	statFrames *atomic.Int64
	statTasks  *atomic.Int64
	statDrops  *atomic.Int64
	statFPS    *status.AtomicFloat
}

// NewScheduler creates an idle scheduler ticking every interval of clock time
func NewScheduler(clock *PausableClock, interval time.Duration, reg *status.Registry) *Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Scheduler{
		clock:      clock,
		interval:   interval,
		statFrames: reg.Ints.Get("engine.frames"),
		statTasks:  reg.Ints.Get("engine.tasks"),
		statDrops:  reg.Ints.Get("engine.dropped_tasks"),
		statFPS:    reg.Floats.Get("engine.fps"),
	}
}

// Register schedules t and returns an idempotent cancel function
// The frame loop starts on the first registration. Registering a task
// that is already scheduled returns a cancel for the existing slot
func (s *Scheduler) Register(t Task) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.findLocked(t)
	if !ok {
		s.nextID++
		id = s.nextID
		s.tasks = append(s.tasks, taskEntry{id: id, task: t})
		s.statTasks.Store(int64(len(s.tasks)))
		s.startLocked()
	}

	var once sync.Once
	canceled := id
	return func() {
		once.Do(func() {
			s.removeByID(canceled)
		})
	}
}

// Unregister removes t from the schedule. Unknown tasks are ignored
func (s *Scheduler) Unregister(t Task) {
	s.mu.Lock()
	id, ok := s.findLocked(t)
	s.mu.Unlock()
	if ok {
		s.removeByID(id)
	}
}

// findLocked locates t by identity. Caller holds mu
func (s *Scheduler) findLocked(t Task) (uint64, bool) {
	for _, e := range s.tasks {
		if e.task == t {
			return e.id, true
		}
	}
	return 0, false
}

// startLocked launches the loop goroutine if idle. Caller holds mu
func (s *Scheduler) startLocked() {
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	stop := s.stopChan
	s.wg.Add(1)
	core.Go(func() {
		s.loop(stop)
	})
}

func (s *Scheduler) removeByID(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.tasks {
		if e.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.statTasks.Store(int64(len(s.tasks)))

	// Last task gone: the loop has nothing left to do
	if len(s.tasks) == 0 && s.running {
		close(s.stopChan)
		s.running = false
	}
}

// Pause freezes the frame loop and the pausable clock. Idempotent, keeps tasks
func (s *Scheduler) Pause() {
	if s.paused.CompareAndSwap(false, true) {
		s.clock.Pause()
	}
}

// Resume continues frame scheduling after Pause. Idempotent
func (s *Scheduler) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.clock.Resume()
	}
}

// IsPaused returns the pause state
func (s *Scheduler) IsPaused() bool {
	return s.paused.Load()
}

// IsRunning reports whether the loop goroutine is live
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ActiveCount returns the number of scheduled tasks
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Frame returns the number of completed frame passes
func (s *Scheduler) Frame() uint64 {
	return s.frameCount.Load()
}

// Interval returns the current frame period
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SetInterval changes the frame period from the next deadline on
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// Teardown drops all tasks, stops the loop, and waits for it to exit
// Safe to call multiple times
func (s *Scheduler) Teardown() {
	s.mu.Lock()
	s.tasks = nil
	s.statTasks.Store(0)
	if s.running {
		close(s.stopChan)
		s.running = false
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// snapshot copies the task list for one pass, or reports that this loop
// instance has been superseded or stopped
func (s *Scheduler) snapshot(stop chan struct{}) ([]taskEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.stopChan != stop {
		return nil, false
	}
	out := make([]taskEntry, len(s.tasks))
	copy(out, s.tasks)
	return out, true
}

// loop runs frame passes against drift-corrected deadlines in clock time
func (s *Scheduler) loop(stop chan struct{}) {
	defer s.wg.Done()

	deadline := s.clock.Now().Add(s.Interval())

	// Rolling fps estimate over 30-frame windows
	rateFrame := s.frameCount.Load()
	rateTime := s.clock.Now()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		var sleep time.Duration

		if s.paused.Load() {
			// Longer sleep while paused to save CPU
			sleep = s.Interval() * 2
		} else {
			now := s.clock.Now()
			if !now.Before(deadline) {
				if !s.runPass(stop) {
					return
				}

				if done := s.frameCount.Load(); done-rateFrame >= 30 {
					if elapsed := now.Sub(rateTime).Seconds(); elapsed > 0 {
						s.statFPS.Store(float64(done-rateFrame) / elapsed)
					}
					rateFrame = done
					rateTime = now
				}

				interval := s.Interval()
				deadline = deadline.Add(interval)

				// Drop accumulated backlog after stalls instead of burst-ticking
				if now.Sub(deadline) > interval*2 {
					deadline = now.Add(interval)
				}

				sleep = deadline.Sub(s.clock.Now())
				if sleep < 0 {
					sleep = 0
				}
			} else {
				sleep = deadline.Sub(now)
			}
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-stop:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				return
			}
		}
	}
}

// runPass executes one frame over a snapshot of the task list
// Every task in the snapshot observes the same frame number
func (s *Scheduler) runPass(stop chan struct{}) bool {
	entries, ok := s.snapshot(stop)
	if !ok {
		return false
	}

	frame := s.frameCount.Load()

	for _, e := range entries {
		err := s.runTask(e.task, frame)
		switch {
		case err == nil:
		case errors.Is(err, ErrTaskDone):
			s.removeByID(e.id)
		default:
			log.Printf("scheduler: task dropped after frame %d: %v", frame, err)
			s.statDrops.Add(1)
			s.removeByID(e.id)
		}
	}

	s.statFrames.Store(int64(s.frameCount.Add(1)))
	return true
}

// runTask isolates panics so one broken task cannot take down the loop
func (s *Scheduler) runTask(t Task, frame uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
		}
	}()
	return t.Tick(frame)
}
