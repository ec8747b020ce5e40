package sink

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"

	"alto/src/core"
	"alto/src/filter"
	"alto/src/format"
)

// Terminal writes rendered records to standard output.
//
// Color is decided once at construction: NO_COLOR in the environment
// forces monochrome output regardless of the configured palette, otherwise
// color is used when stdout is a terminal.
type Terminal struct {
	filters  *filter.Filters
	renderer *format.Renderer

	mu  sync.Mutex
	out io.Writer

	totalEmitted atomic.Uint64
}

// NewTerminal creates a stdout sink with filters from the environment.
func NewTerminal(opts format.Options) (*Terminal, error) {
	renderer, err := format.NewRenderer(opts.Clone(), colorChoice(os.Stdout))
	if err != nil {
		return nil, err
	}

	return &Terminal{
		filters:  filter.FromEnv(),
		renderer: renderer,
		out:      os.Stdout,
	}, nil
}

// WithFilters replaces the sink's filters. Call before the sink is
// installed or shared.
func (t *Terminal) WithFilters(f *filter.Filters) *Terminal {
	t.filters = f
	return t
}

func (t *Terminal) Enabled(level core.Level, target string) bool {
	return t.filters.IsEnabled(level, target)
}

func (t *Terminal) Emit(rec core.Record) {
	if !t.Enabled(rec.Level, rec.Target) {
		return
	}

	// Rendering happens under the lock so a delta timestamp and the bytes
	// written belong to exactly this record.
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.Write(t.renderer.Render(rec))
	t.totalEmitted.Add(1)
}

func (t *Terminal) Flush() {}

// Stats returns emission counters for diagnostics.
func (t *Terminal) Stats() map[string]any {
	return map[string]any{
		"type":          "terminal",
		"total_emitted": t.totalEmitted.Load(),
	}
}

// colorChoice captures the color decision for a destination stream.
func colorChoice(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
