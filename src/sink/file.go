package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"alto/src/core"
	"alto/src/filter"
	"alto/src/format"
)

// File writes rendered records to an io.Writer, usually an *os.File.
// Output is always monochrome.
type File struct {
	filters  *filter.Filters
	renderer *format.Renderer
	path     string

	mu sync.Mutex
	w  io.Writer

	totalEmitted atomic.Uint64
}

// NewWriter creates a file sink over an arbitrary writer.
func NewWriter(opts format.Options, w io.Writer) (*File, error) {
	renderer, err := format.NewRenderer(opts.Clone(), false)
	if err != nil {
		return nil, err
	}

	return &File{
		filters:  filter.FromEnv(),
		renderer: renderer,
		w:        w,
	}, nil
}

// Truncate creates a file sink that recreates the log file empty.
func Truncate(opts format.Options, path string) (*File, error) {
	return open(opts, path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// Append creates a file sink that appends, creating the file if absent.
func Append(opts format.Options, path string) (*File, error) {
	return open(opts, path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

// Timestamped creates a file sink on a unique derived path: "out.log"
// becomes "out_1587429534.log", extensionless "out" becomes
// "out_1587429534". Fails when the derived path already exists so another
// run's output is never overwritten.
func Timestamped(opts format.Options, path string) (*File, error) {
	derived := timestampedPath(path, time.Now().Unix())
	return open(opts, derived, os.O_CREATE|os.O_WRONLY|os.O_EXCL)
}

func open(opts format.Options, path string, flags int) (*File, error) {
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	s, err := NewWriter(opts, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.path = path
	return s, nil
}

// timestampedPath inserts unix seconds between the file stem and its
// extension.
func timestampedPath(path string, secs int64) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, secs, ext))
}

// WithFilters replaces the sink's filters. Call before the sink is
// installed or shared.
func (f *File) WithFilters(fl *filter.Filters) *File {
	f.filters = fl
	return f
}

// Path returns the resolved destination path, "" for writer-backed sinks.
func (f *File) Path() string {
	return f.path
}

func (f *File) Enabled(level core.Level, target string) bool {
	return f.filters.IsEnabled(level, target)
}

func (f *File) Emit(rec core.Record) {
	if !f.Enabled(rec.Level, rec.Target) {
		return
	}

	// Render under the lock: the delta timestamp slot and the written
	// bytes must not interleave across records.
	f.mu.Lock()
	defer f.mu.Unlock()
	f.w.Write(f.renderer.Render(rec))
	f.totalEmitted.Add(1)
}

func (f *File) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()

	type syncer interface{ Sync() error }
	if s, ok := f.w.(syncer); ok {
		s.Sync()
	}
}

// Stats returns emission counters for diagnostics.
func (f *File) Stats() map[string]any {
	return map[string]any{
		"type":          "file",
		"path":          f.path,
		"total_emitted": f.totalEmitted.Load(),
	}
}
