package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"termfolio/engine/status"
)

func newTestScheduler(interval time.Duration) *Scheduler {
	clock := NewPausableClock(NewMonotonicTimeProvider())
	return NewScheduler(clock, interval, status.NewRegistry())
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for: %s", msg)
}

type countingTask struct {
	ticks atomic.Int64
}

func (c *countingTask) Tick(frame uint64) error {
	c.ticks.Add(1)
	return nil
}

func TestSchedulerStartsOnFirstRegister(t *testing.T) {
	s := newTestScheduler(10 * time.Millisecond)
	defer s.Teardown()

	if s.IsRunning() {
		t.Error("Expected idle scheduler before any registration")
	}

	task := &countingTask{}
	cancel := s.Register(task)
	defer cancel()

	if !s.IsRunning() {
		t.Error("Expected loop to start on first registration")
	}

	time.Sleep(150 * time.Millisecond)

	ticks := task.ticks.Load()
	// 150ms / 10ms = 15 expected, allow generous variance
	if ticks < 8 {
		t.Errorf("Expected at least 8 ticks after 150ms, got %d", ticks)
	}
	if ticks > 20 {
		t.Errorf("Expected at most 20 ticks after 150ms, got %d", ticks)
	}
}

func TestSchedulerStopsWhenLastTaskLeaves(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	cancel := s.Register(&countingTask{})

	waitFor(t, time.Second, s.IsRunning, "loop start")
	cancel()

	if got := s.ActiveCount(); got != 0 {
		t.Errorf("Expected 0 active tasks after cancel, got %d", got)
	}
	waitFor(t, time.Second, func() bool { return !s.IsRunning() }, "loop self-stop")
}

func TestSchedulerCancelIsIdempotent(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	a := &countingTask{}
	b := &countingTask{}
	cancelA := s.Register(a)
	s.Register(b)

	cancelA()
	cancelA()
	cancelA()

	if got := s.ActiveCount(); got != 1 {
		t.Errorf("Expected 1 active task after repeated cancel of the other, got %d", got)
	}
}

func TestSchedulerRegisterSameTaskTwice(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	task := &countingTask{}
	s.Register(task)
	cancel2 := s.Register(task)

	if got := s.ActiveCount(); got != 1 {
		t.Errorf("Expected duplicate registration to be a no-op, got %d tasks", got)
	}

	// The second cancel still removes the single slot
	cancel2()
	if got := s.ActiveCount(); got != 0 {
		t.Errorf("Expected 0 tasks after cancel, got %d", got)
	}
}

func TestSchedulerUnregisterUnknownTask(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	s.Register(&countingTask{})
	s.Unregister(&countingTask{}) // Never registered

	if got := s.ActiveCount(); got != 1 {
		t.Errorf("Expected unknown unregister to be ignored, got %d tasks", got)
	}
}

func TestSchedulerTaskDoneRemovesQuietly(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	var ticks atomic.Int64
	task := NewTask(func(frame uint64) error {
		if ticks.Add(1) >= 3 {
			return ErrTaskDone
		}
		return nil
	})
	s.Register(task)

	waitFor(t, time.Second, func() bool { return s.ActiveCount() == 0 }, "task self-removal")

	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != 3 {
		t.Errorf("Expected exactly 3 ticks before ErrTaskDone removal, got %d", got)
	}
}

func TestSchedulerFailedTaskDoesNotStopOthers(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	failing := NewTask(func(frame uint64) error {
		return errors.New("boom")
	})
	survivor := &countingTask{}

	s.Register(failing)
	s.Register(survivor)

	waitFor(t, time.Second, func() bool { return s.ActiveCount() == 1 }, "failed task removal")
	waitFor(t, time.Second, func() bool { return survivor.ticks.Load() >= 5 }, "survivor still ticking")
}

func TestSchedulerPanickingTaskIsIsolated(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	panicking := NewTask(func(frame uint64) error {
		panic("task exploded")
	})
	survivor := &countingTask{}

	s.Register(panicking)
	s.Register(survivor)

	waitFor(t, time.Second, func() bool { return s.ActiveCount() == 1 }, "panicking task removal")
	waitFor(t, time.Second, func() bool { return survivor.ticks.Load() >= 5 }, "survivor still ticking")
}

func TestSchedulerPauseFreezesTicking(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	task := &countingTask{}
	s.Register(task)

	waitFor(t, time.Second, func() bool { return task.ticks.Load() >= 3 }, "initial ticking")

	s.Pause()
	s.Pause() // Idempotent
	time.Sleep(30 * time.Millisecond)
	frozen := task.ticks.Load()

	time.Sleep(60 * time.Millisecond)
	if got := task.ticks.Load(); got != frozen {
		t.Errorf("Expected tick count frozen at %d while paused, got %d", frozen, got)
	}
	if got := s.ActiveCount(); got != 1 {
		t.Errorf("Expected pause to keep tasks, got %d", got)
	}

	s.Resume()
	s.Resume() // Idempotent
	waitFor(t, time.Second, func() bool { return task.ticks.Load() > frozen }, "ticking after resume")
}

func TestSchedulerSelfCancelInsideTick(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	var cancel func()
	var mu sync.Mutex
	var ticks int

	task := NewTask(func(frame uint64) error {
		mu.Lock()
		defer mu.Unlock()
		ticks++
		if ticks == 2 {
			cancel() // Must not deadlock
		}
		return nil
	})

	mu.Lock()
	cancel = s.Register(task)
	mu.Unlock()

	waitFor(t, time.Second, func() bool { return s.ActiveCount() == 0 }, "self-cancel removal")

	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	got := ticks
	mu.Unlock()
	if got != 2 {
		t.Errorf("Expected 2 ticks before self-cancel took effect, got %d", got)
	}
}

func TestSchedulerSameFrameNumberWithinPass(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	var mu sync.Mutex
	var framesA, framesB []uint64

	s.Register(NewTask(func(frame uint64) error {
		mu.Lock()
		framesA = append(framesA, frame)
		mu.Unlock()
		return nil
	}))
	s.Register(NewTask(func(frame uint64) error {
		mu.Lock()
		framesB = append(framesB, frame)
		mu.Unlock()
		return nil
	}))

	waitFor(t, time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(framesA) >= 5 && len(framesB) >= 5
	}, "five frame passes")

	s.Teardown()

	mu.Lock()
	defer mu.Unlock()
	n := len(framesA)
	if len(framesB) < n {
		n = len(framesB)
	}
	for i := 0; i < n; i++ {
		if framesA[i] != framesB[i] {
			t.Fatalf("Pass %d: tasks observed different frames %d and %d", i, framesA[i], framesB[i])
		}
	}
	for i := 1; i < n; i++ {
		if framesA[i] != framesA[i-1]+1 {
			t.Fatalf("Expected consecutive frame numbers, got %d then %d", framesA[i-1], framesA[i])
		}
	}
}

func TestSchedulerRestartsAfterSelfStop(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)
	defer s.Teardown()

	first := &countingTask{}
	cancel := s.Register(first)
	waitFor(t, time.Second, func() bool { return first.ticks.Load() >= 2 }, "first task ticking")
	cancel()
	waitFor(t, time.Second, func() bool { return !s.IsRunning() }, "self-stop")

	second := &countingTask{}
	s.Register(second)
	waitFor(t, time.Second, func() bool { return second.ticks.Load() >= 2 }, "restarted loop ticking")
}

func TestSchedulerTeardownIdempotent(t *testing.T) {
	s := newTestScheduler(5 * time.Millisecond)

	s.Register(&countingTask{})
	s.Register(&countingTask{})

	s.Teardown()
	s.Teardown()
	s.Teardown()

	if got := s.ActiveCount(); got != 0 {
		t.Errorf("Expected 0 tasks after teardown, got %d", got)
	}
	if s.IsRunning() {
		t.Error("Expected stopped loop after teardown")
	}
}

func TestSchedulerSetInterval(t *testing.T) {
	s := newTestScheduler(40 * time.Millisecond)
	defer s.Teardown()

	if got := s.Interval(); got != 40*time.Millisecond {
		t.Errorf("Expected 40ms interval, got %v", got)
	}

	s.SetInterval(10 * time.Millisecond)
	if got := s.Interval(); got != 10*time.Millisecond {
		t.Errorf("Expected 10ms interval after SetInterval, got %v", got)
	}

	s.SetInterval(0) // Ignored
	if got := s.Interval(); got != 10*time.Millisecond {
		t.Errorf("Expected invalid interval to be ignored, got %v", got)
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	clock := NewPausableClock(NewMonotonicTimeProvider())
	s := NewScheduler(clock, 0, status.NewRegistry())
	defer s.Teardown()

	if got := s.Interval(); got != DefaultFrameInterval {
		t.Errorf("Expected default interval %v, got %v", DefaultFrameInterval, got)
	}
}

func TestSchedulerGoroutineLifecycle(t *testing.T) {
	// Create and destroy repeatedly; a leaked loop would hang Teardown
	for i := 0; i < 10; i++ {
		s := newTestScheduler(5 * time.Millisecond)
		cancel := s.Register(&countingTask{})
		time.Sleep(10 * time.Millisecond)
		cancel()
		s.Teardown()
	}
}
