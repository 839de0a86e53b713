package content

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollTweenSecs is how long one eased scroll animation takes.
const scrollTweenSecs = 0.35

// Line is one renderable row of content.
type Line struct {
	Text    string
	Heading bool
}

// View owns the flattened content lines and a smooth scroll offset.
// Scroll intents move a target; the offset eases toward it every
// update. Confined to the frame goroutine.
type View struct {
	lines    []Line
	offset   float64
	target   float64
	tween    *gween.Tween
	viewRows int
}

// NewView flattens sections into lines. No sections means the
// built-in portfolio copy.
func NewView(sections ...Section) *View {
	if len(sections) == 0 {
		sections = DefaultSections()
	}
	v := &View{viewRows: 1}
	for _, s := range sections {
		v.lines = append(v.lines, Line{Text: s.Title, Heading: true})
		v.lines = append(v.lines, Line{})
		for _, b := range s.Body {
			v.lines = append(v.lines, Line{Text: b})
		}
		v.lines = append(v.lines, Line{})
	}
	return v
}

// Height returns the total line count.
func (v *View) Height() int { return len(v.lines) }

// Offset returns the current scroll offset in lines.
func (v *View) Offset() float64 { return v.offset }

// Target returns the offset the view is easing toward.
func (v *View) Target() float64 { return v.target }

// SetViewport tells the view how many lines fit on screen, reclamping
// the current position.
func (v *View) SetViewport(rows int) {
	if rows < 1 {
		rows = 1
	}
	v.viewRows = rows
	v.retarget(v.target)
}

func (v *View) maxOffset() float64 {
	m := len(v.lines) - v.viewRows
	if m < 0 {
		m = 0
	}
	return float64(m)
}

// ScrollBy moves the target by a signed number of lines and starts a
// fresh ease from wherever the view currently sits.
func (v *View) ScrollBy(lines int) {
	v.retarget(v.target + float64(lines))
}

// JumpTop eases back to the first line.
func (v *View) JumpTop() { v.retarget(0) }

// JumpBottom eases to the last page.
func (v *View) JumpBottom() { v.retarget(v.maxOffset()) }

func (v *View) retarget(target float64) {
	if target < 0 {
		target = 0
	}
	if m := v.maxOffset(); target > m {
		target = m
	}
	v.target = target
	if v.offset == target {
		v.tween = nil
		return
	}
	v.tween = gween.New(float32(v.offset), float32(target), scrollTweenSecs, ease.OutQuad)
}

// Update advances the scroll animation by dt seconds.
func (v *View) Update(dt float64) {
	if v.tween == nil {
		return
	}
	current, finished := v.tween.Update(float32(dt))
	v.offset = float64(current)
	if finished {
		v.offset = v.target
		v.tween = nil
	}
}

// Scrolling reports whether an ease is still in flight.
func (v *View) Scrolling() bool { return v.tween != nil }

// VisibleLines returns the window of lines currently on screen.
func (v *View) VisibleLines() []Line {
	if len(v.lines) == 0 {
		return nil
	}
	start := int(math.Round(v.offset))
	if start < 0 {
		start = 0
	}
	if start >= len(v.lines) {
		start = len(v.lines) - 1
	}
	end := start + v.viewRows
	if end > len(v.lines) {
		end = len(v.lines)
	}
	return v.lines[start:end]
}
