package sink

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"alto/src/core"
	"alto/src/filter"
	"alto/src/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleLine() format.Options {
	return format.DefaultOptions().WithStyle(format.SingleLine)
}

func allowAll() *filter.Filters {
	return filter.FromString("trace,root=trace")
}

func record(level core.Level, target, msg string) core.Record {
	return core.Record{Level: level, Target: target, Message: msg}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	s, err := Truncate(singleLine(), path)
	require.NoError(t, err)
	s.WithFilters(allowAll())

	const n = 5
	for i := 0; i < n; i++ {
		s.Emit(record(core.InfoLevel, "app::worker", fmt.Sprintf("job %d", i)))
	}
	s.Flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("INFO  [app::worker] job %d", i), line)
	}
}

func TestFileTruncateRecreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	s, err := Truncate(singleLine(), path)
	require.NoError(t, err)
	s.WithFilters(allowAll())

	s.Emit(record(core.WarnLevel, "app", "fresh"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "WARN  [app] fresh\n", string(data))
}

func TestFileAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	for i := 0; i < 2; i++ {
		s, err := Append(singleLine(), path)
		require.NoError(t, err)
		s.WithFilters(allowAll())
		s.Emit(record(core.InfoLevel, "app", fmt.Sprintf("run %d", i)))
		s.Flush()
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO  [app] run 0\nINFO  [app] run 1\n", string(data))
}

func TestTimestampedPath(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "WithExtension", path: "out.log", expected: "out_1587429534.log"},
		{name: "Extensionless", path: "out", expected: "out_1587429534"},
		{name: "WithDirectory", path: filepath.Join("logs", "run.txt"), expected: filepath.Join("logs", "run_1587429534.txt")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, timestampedPath(tc.path, 1587429534))
		})
	}
}

func TestFileTimestamped(t *testing.T) {
	t.Run("CreatesDerivedPath", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Timestamped(singleLine(), filepath.Join(dir, "out.log"))
		require.NoError(t, err)

		base := filepath.Base(s.Path())
		assert.Regexp(t, `^out_\d+\.log$`, base)
		_, err = os.Stat(s.Path())
		assert.NoError(t, err)
	})

	t.Run("FailsOnCollision", func(t *testing.T) {
		dir := t.TempDir()
		// Occupy every derived name the construction below could pick
		now := time.Now().Unix()
		for secs := now - 1; secs <= now+2; secs++ {
			occupied := timestampedPath(filepath.Join(dir, "out.log"), secs)
			require.NoError(t, os.WriteFile(occupied, nil, 0644))
		}

		_, err := Timestamped(singleLine(), filepath.Join(dir, "out.log"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrExist)
	})
}

func TestFileFiltering(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewWriter(singleLine(), &buf)
	require.NoError(t, err)
	s.WithFilters(filter.FromString("app=warn"))

	assert.True(t, s.Enabled(core.ErrorLevel, "app::db"))
	assert.False(t, s.Enabled(core.InfoLevel, "app::db"))

	s.Emit(record(core.InfoLevel, "app::db", "dropped"))
	s.Emit(record(core.ErrorLevel, "app::db", "kept"))

	assert.Equal(t, "ERROR [app::db] kept\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Sync() error                 { return errors.New("disk full") }

func TestEmitSwallowsWriteErrors(t *testing.T) {
	s, err := NewWriter(singleLine(), failingWriter{})
	require.NoError(t, err)
	s.WithFilters(allowAll())

	// Neither emit nor flush may panic or surface the failure
	assert.NotPanics(t, func() {
		s.Emit(record(core.ErrorLevel, "app", "lost"))
		s.Flush()
	})
}

func TestMulti(t *testing.T) {
	t.Run("ForwardsToAllChildren", func(t *testing.T) {
		var a, b bytes.Buffer
		childA, err := NewWriter(singleLine(), &a)
		require.NoError(t, err)
		childB, err := NewWriter(singleLine(), &b)
		require.NoError(t, err)
		childA.WithFilters(allowAll())
		childB.WithFilters(allowAll())

		m := NewMulti(childA).With(childB).WithFilters(allowAll())
		m.Emit(record(core.InfoLevel, "app", "both"))
		m.Flush()

		assert.Equal(t, "INFO  [app] both\n", a.String())
		assert.Equal(t, "INFO  [app] both\n", b.String())
	})

	t.Run("OwnFilterGatesChildren", func(t *testing.T) {
		var buf bytes.Buffer
		child, err := NewWriter(singleLine(), &buf)
		require.NoError(t, err)
		child.WithFilters(allowAll())

		// The child would accept, but the fan-out's own filter refuses:
		// zero bytes must reach the child
		m := NewMulti(child).WithFilters(filter.FromString("app=off"))
		assert.False(t, m.Enabled(core.ErrorLevel, "app"))

		m.Emit(record(core.ErrorLevel, "app", "blocked"))
		assert.Zero(t, buf.Len())
	})

	t.Run("ChildrenRefilter", func(t *testing.T) {
		var verbose, errorsOnly bytes.Buffer
		childV, err := NewWriter(singleLine(), &verbose)
		require.NoError(t, err)
		childE, err := NewWriter(singleLine(), &errorsOnly)
		require.NoError(t, err)
		childV.WithFilters(filter.FromString("app=trace"))
		childE.WithFilters(filter.FromString("app=error"))

		m := NewMulti(childV, childE).WithFilters(allowAll())
		m.Emit(record(core.InfoLevel, "app", "routine"))
		m.Emit(record(core.ErrorLevel, "app", "boom"))

		assert.Equal(t, 2, strings.Count(verbose.String(), "\n"))
		assert.Equal(t, "ERROR [app] boom\n", errorsOnly.String())
	})
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewWriter(singleLine(), &buf)
	require.NoError(t, err)
	s.WithFilters(allowAll())

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Emit(record(core.InfoLevel, "worker", fmt.Sprintf("g%d i%d", g, i)))
			}
		}(g)
	}
	wg.Wait()

	// Writes never interleave mid-record
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, goroutines*perGoroutine)
	for _, line := range lines {
		assert.Regexp(t, `^INFO  \[worker\] g\d+ i\d+$`, line)
	}
}

func TestColorChoice(t *testing.T) {
	t.Run("NoColorEnvWins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, colorChoice(os.Stdout))
	})
}

func TestTerminalConstruction(t *testing.T) {
	t.Run("InvalidTimeLayoutFailsFast", func(t *testing.T) {
		opts := format.DefaultOptions().WithTime(format.DateTime(""))
		_, err := NewTerminal(opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, format.ErrInvalidTimeLayout)
	})

	t.Run("EnvFilters", func(t *testing.T) {
		t.Setenv(filter.EnvVar, "tui=debug")
		s, err := NewTerminal(format.DefaultOptions())
		require.NoError(t, err)
		assert.True(t, s.Enabled(core.DebugLevel, "tui::panel"))
		assert.False(t, s.Enabled(core.TraceLevel, "tui"))
	})
}
