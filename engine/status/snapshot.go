package status

import (
	"sort"
	"strconv"
)

// Line is one formatted metric for display
type Line struct {
	Name  string
	Value string
}

// Snapshot returns every metric as a display line, sorted by name
// Reads are atomic per metric, not consistent across the set
func (r *Registry) Snapshot() []Line {
	lines := make([]Line, 0, r.TotalCount())

	for _, name := range r.Bools.Names() {
		lines = append(lines, Line{
			Name:  name,
			Value: strconv.FormatBool(r.Bools.Get(name).Load()),
		})
	}
	for _, name := range r.Ints.Names() {
		lines = append(lines, Line{
			Name:  name,
			Value: strconv.FormatInt(r.Ints.Get(name).Load(), 10),
		})
	}
	for _, name := range r.Floats.Names() {
		lines = append(lines, Line{
			Name:  name,
			Value: strconv.FormatFloat(r.Floats.Get(name).Load(), 'f', 2, 64),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})
	return lines
}
