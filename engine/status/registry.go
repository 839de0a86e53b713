package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// AtomicFloat stores a float64 through atomic bit conversion
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Load returns the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MetricMap holds named metrics of one atomic type
// Get allocates on first use; returned pointers are stable so callers cache them
type MetricMap[T any] struct {
	mu sync.RWMutex
	m  map[string]*T
}

// NewMetricMap creates an empty metric map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		m: make(map[string]*T),
	}
}

// Get returns the metric for name, creating it on first use
func (mm *MetricMap[T]) Get(name string) *T {
	mm.mu.RLock()
	v, ok := mm.m[name]
	mm.mu.RUnlock()
	if ok {
		return v
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	if v, ok := mm.m[name]; ok {
		return v
	}
	v = new(T)
	mm.m[name] = v
	return v
}

// Names returns all registered metric names, sorted
func (mm *MetricMap[T]) Names() []string {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	names := make([]string, 0, len(mm.m))
	for name := range mm.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered metrics
func (mm *MetricMap[T]) Count() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return len(mm.m)
}

// Registry is the central metrics facade
// Components cache pointers during init; frame loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
