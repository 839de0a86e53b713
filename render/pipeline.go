package render

// Priority orders renderers within a frame, lower draws first
type Priority int

const (
	PriorityBackdrop Priority = 10
	PriorityBanner   Priority = 20
	PriorityContent  Priority = 30
	PriorityOverlay  Priority = 40
	PriorityStatus   Priority = 50
)

// Renderer is implemented by components with visual output
type Renderer interface {
	Render(frame uint64, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Pipeline coordinates the render pass for one frame
type Pipeline struct {
	surface   Surface
	renderers []rendererEntry
	regCount  int
}

// NewPipeline creates a pipeline drawing onto the given surface
func NewPipeline(surface Surface) *Pipeline {
	return &Pipeline{
		surface:   surface,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (p *Pipeline) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    p.regCount,
	}
	p.regCount++

	// Insertion sort: find position and insert
	pos := len(p.renderers)
	for i, e := range p.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	p.renderers = append(p.renderers, rendererEntry{})
	copy(p.renderers[pos+1:], p.renderers[pos:])
	p.renderers[pos] = entry
}

// Surface returns the pipeline's drawing target
func (p *Pipeline) Surface() Surface {
	return p.surface
}

// RenderFrame executes the render pass: clear, render all, flush
func (p *Pipeline) RenderFrame(frame uint64) {
	p.surface.Clear()

	for _, entry := range p.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(frame, p.surface)
	}

	p.surface.Flush()
}
