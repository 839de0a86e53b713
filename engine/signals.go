package engine

import (
	"runtime"
	"sync/atomic"

	"termfolio/engine/status"
)

// MemoryWatcher samples heap usage and reports soft-limit pressure
// It runs as an ordinary scheduler task so sampling pauses with the loop
type MemoryWatcher struct {
	sampleEvery uint64
	softLimit   uint64
	onPressure  func(heapBytes uint64)

	// Edge-triggered: fires on crossing, re-arms below 80% of the limit
	over bool

	statHeap *atomic.Int64
}

// NewMemoryWatcher creates a watcher sampling every sampleEvery frames
// A softLimit of 0 records the heap metric without ever firing
func NewMemoryWatcher(reg *status.Registry, sampleEvery uint64, softLimit uint64, onPressure func(uint64)) *MemoryWatcher {
	if sampleEvery == 0 {
		sampleEvery = 1
	}
	return &MemoryWatcher{
		sampleEvery: sampleEvery,
		softLimit:   softLimit,
		onPressure:  onPressure,
		statHeap:    reg.Ints.Get("memory.heap_bytes"),
	}
}

// Tick implements Task
func (w *MemoryWatcher) Tick(frame uint64) error {
	if frame%w.sampleEvery != 0 {
		return nil
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	w.statHeap.Store(int64(ms.HeapAlloc))

	if w.softLimit == 0 {
		return nil
	}

	if ms.HeapAlloc > w.softLimit {
		if !w.over {
			w.over = true
			if w.onPressure != nil {
				w.onPressure(ms.HeapAlloc)
			}
		}
	} else if w.over && ms.HeapAlloc < w.softLimit-w.softLimit/5 {
		w.over = false
	}
	return nil
}
