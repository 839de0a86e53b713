package effects

import (
	"termfolio/banner"
	"termfolio/theme"
)

// Dispatcher owns the effect list, the active selection and the
// pointer state, and runs the active strategy over the particle store
// once per frame. Confined to the frame goroutine like the store.
type Dispatcher struct {
	effects []Effect
	active  int
	ctx     Context

	sink theme.Sink

	// OnChange fires after a selection changes, with the new effect's
	// name. Used to persist the choice.
	OnChange func(name string)

	// hoverStart maps particle index to the frame its hover began.
	hoverStart map[int]uint64
}

// Defaults returns the built-in strategies in selection order.
func Defaults() []Effect {
	return []Effect{
		NewMatrix(),
		NewWave(),
		NewScramble(),
		NewPulse(),
		NewTicker(),
		NewBinary(),
	}
}

// NewDispatcher wires the given effects. The first effect starts
// active and its scheme is pushed to sink immediately so the UI never
// paints unstyled. sink may be nil.
func NewDispatcher(sink theme.Sink, effects ...Effect) *Dispatcher {
	if len(effects) == 0 {
		effects = Defaults()
	}
	d := &Dispatcher{
		effects:    effects,
		sink:       sink,
		hoverStart: make(map[int]uint64),
	}
	d.ctx.Threshold = DefaultHoverThreshold
	d.applyScheme(0)
	return d
}

// Count returns the number of effects.
func (d *Dispatcher) Count() int { return len(d.effects) }

// Active returns the active effect index.
func (d *Dispatcher) Active() int { return d.active }

// ActiveName returns the active effect's name.
func (d *Dispatcher) ActiveName() string { return d.effects[d.active].Name() }

// Names lists the effect names in selection order.
func (d *Dispatcher) Names() []string {
	names := make([]string, len(d.effects))
	for i, e := range d.effects {
		names[i] = e.Name()
	}
	return names
}

// Scheme returns the colour scheme of the active effect.
func (d *Dispatcher) Scheme() theme.Scheme { return d.ctx.Scheme }

// SetThreshold overrides the hover capture radius. Values at or below
// zero restore the default.
func (d *Dispatcher) SetThreshold(px float64) {
	if px <= 0 {
		px = DefaultHoverThreshold
	}
	d.ctx.Threshold = px
}

// Select activates the effect at index i, clamped into the valid
// range, applies its scheme and reports the change.
func (d *Dispatcher) Select(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.effects) {
		i = len(d.effects) - 1
	}
	d.applyScheme(i)
	if d.OnChange != nil {
		d.OnChange(d.ActiveName())
	}
}

// SelectByName activates the effect with the given name. Unknown
// names leave the selection untouched.
func (d *Dispatcher) SelectByName(name string) bool {
	for i, e := range d.effects {
		if e.Name() == name {
			d.Select(i)
			return true
		}
	}
	return false
}

// Cycle moves the selection by delta, wrapping at both ends.
func (d *Dispatcher) Cycle(delta int) {
	n := len(d.effects)
	d.Select(((d.active+delta)%n + n) % n)
}

func (d *Dispatcher) applyScheme(i int) {
	d.active = i
	d.ctx.Scheme = theme.SchemeFor(d.effects[i].Name())
	if d.sink != nil {
		d.sink.ApplyScheme(d.ctx.Scheme)
	}
}

// SetPointer moves the pointer to pixel position (x, y).
func (d *Dispatcher) SetPointer(x, y float64) {
	d.ctx.PointerX = x
	d.ctx.PointerY = y
	d.ctx.PointerActive = true
}

// ClearPointer releases the pointer, so every particle takes the idle
// path until it moves again.
func (d *Dispatcher) ClearPointer() {
	d.ctx.PointerActive = false
	for k := range d.hoverStart {
		delete(d.hoverStart, k)
	}
}

// Pointer returns the pointer position and whether it is active.
func (d *Dispatcher) Pointer() (x, y float64, active bool) {
	return d.ctx.PointerX, d.ctx.PointerY, d.ctx.PointerActive
}

// Apply runs the active strategy over every particle for this frame.
// Hover is decided against the particle's anchor, so drifting glyphs
// do not slide out of capture.
func (d *Dispatcher) Apply(st *banner.Store, frame uint64) {
	d.ctx.Frame = frame
	eff := d.effects[d.active]
	st.Each(func(p *banner.Particle) {
		if d.ctx.Hovering(p.BaseX, p.BaseY) {
			start, ok := d.hoverStart[p.Index]
			if !ok {
				start = frame
				d.hoverStart[p.Index] = frame
			}
			d.ctx.HoverAge = frame - start
			eff.Hover(p, &d.ctx)
			return
		}
		delete(d.hoverStart, p.Index)
		d.ctx.HoverAge = 0
		eff.Idle(p, &d.ctx)
	})
}
