package logger

import (
	"errors"
	"fmt"
	"sync/atomic"

	"alto/src/core"
	"alto/src/format"
	"alto/src/sink"
)

// ErrAlreadyInstalled is returned when a second sink is installed.
var ErrAlreadyInstalled = errors.New("logger already installed")

// The process-wide sink. Set exactly once, read on every dispatch.
type slot struct {
	s sink.Sink
}

var active atomic.Pointer[slot]

// Install makes the sink the process-wide logger for the rest of the
// process lifetime. A second call fails instead of replacing or stacking.
func Install(s sink.Sink) error {
	if s == nil {
		return errors.New("nil sink")
	}
	if !active.CompareAndSwap(nil, &slot{s: s}) {
		return ErrAlreadyInstalled
	}
	return nil
}

// InstallTerminal installs a default terminal sink.
func InstallTerminal() error {
	t, err := sink.NewTerminal(format.DefaultOptions())
	if err != nil {
		return err
	}
	return Install(t)
}

// Installed reports whether a sink has been installed.
func Installed() bool {
	return active.Load() != nil
}

// reset clears the slot. Tests only.
func reset() {
	active.Store(nil)
}

// Emit dispatches a record to the installed sink. Without one, records
// are discarded.
func Emit(rec core.Record) {
	if s := active.Load(); s != nil {
		s.s.Emit(rec)
	}
}

// Flush flushes the installed sink, best effort.
func Flush() {
	if s := active.Load(); s != nil {
		s.s.Flush()
	}
}

// Trace logs a formatted message at trace level
func Trace(target, msg string, args ...any) {
	dispatch(core.TraceLevel, target, msg, args...)
}

// Debug logs a formatted message at debug level
func Debug(target, msg string, args ...any) {
	dispatch(core.DebugLevel, target, msg, args...)
}

// Info logs a formatted message at info level
func Info(target, msg string, args ...any) {
	dispatch(core.InfoLevel, target, msg, args...)
}

// Warn logs a formatted message at warn level
func Warn(target, msg string, args ...any) {
	dispatch(core.WarnLevel, target, msg, args...)
}

// Error logs a formatted message at error level
func Error(target, msg string, args ...any) {
	dispatch(core.ErrorLevel, target, msg, args...)
}

func dispatch(level core.Level, target, msg string, args ...any) {
	s := active.Load()
	if s == nil || !s.s.Enabled(level, target) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	s.s.Emit(core.Record{Level: level, Target: target, Message: msg})
}
