package sink

import (
	"alto/src/core"
	"alto/src/filter"
)

// Multi fans records out to an ordered list of child sinks. Its own
// filters gate forwarding as a whole; a record they reject never reaches
// any child. Accepted records go to every child, and each child filters
// again independently.
type Multi struct {
	filters  *filter.Filters
	children []Sink
}

// NewMulti creates a fan-out with filters from the environment.
func NewMulti(children ...Sink) *Multi {
	return &Multi{
		filters:  filter.FromEnv(),
		children: children,
	}
}

// With appends a child sink.
func (m *Multi) With(s Sink) *Multi {
	m.children = append(m.children, s)
	return m
}

// WithFilters replaces the fan-out's own top-level filters. Call before
// the sink is installed or shared.
func (m *Multi) WithFilters(f *filter.Filters) *Multi {
	m.filters = f
	return m
}

func (m *Multi) Enabled(level core.Level, target string) bool {
	return m.filters.IsEnabled(level, target)
}

func (m *Multi) Emit(rec core.Record) {
	if !m.Enabled(rec.Level, rec.Target) {
		return
	}
	for _, child := range m.children {
		child.Emit(rec)
	}
}

func (m *Multi) Flush() {
	for _, child := range m.children {
		child.Flush()
	}
}
