package effects

import (
	"math"

	"termfolio/theme"
)

// DefaultHoverThreshold is the pointer capture radius in pixels.
const DefaultHoverThreshold = 30.0

// Context carries the per-frame inputs a strategy reads. The
// dispatcher owns one Context and refreshes it before every pass;
// HoverAge is refreshed per particle.
type Context struct {
	Frame uint64

	PointerX      float64
	PointerY      float64
	PointerActive bool
	Threshold     float64

	Scheme theme.Scheme

	// HoverAge is how many frames the particle currently being
	// processed has been under the pointer. Zero on the idle path.
	HoverAge uint64
}

// Hovering reports whether the pointer captures a particle anchored
// at (x, y).
func (c *Context) Hovering(x, y float64) bool {
	if !c.PointerActive {
		return false
	}
	dx := x - c.PointerX
	dy := y - c.PointerY
	return math.Sqrt(dx*dx+dy*dy) <= c.Threshold
}

// HoverProgress maps the hover age onto [0, 1], saturating after
// rampFrames.
func (c *Context) HoverProgress(rampFrames uint64) float64 {
	if rampFrames == 0 || c.HoverAge >= rampFrames {
		return 1
	}
	return float64(c.HoverAge) / float64(rampFrames)
}

// BlockProgress is a sawtooth in [0, 1) over cycleFrames, shifted by
// delayFrames per block so neighbouring blocks animate staggered.
func (c *Context) BlockProgress(blockIndex int, delayFrames, cycleFrames uint64) float64 {
	if cycleFrames == 0 {
		return 0
	}
	shifted := c.Frame + uint64(blockIndex)*delayFrames
	return float64(shifted%cycleFrames) / float64(cycleFrames)
}
