package format

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// TimeMode selects how the timestamp field is produced.
type TimeMode int

const (
	// TimeNone emits no timestamp field
	TimeNone TimeMode = iota
	// TimeUnix emits seconds since the unix epoch, recomputed every render
	TimeUnix
	// TimeRelative emits seconds elapsed since the config was created
	TimeRelative
	// TimeDelta emits seconds elapsed since the previous render
	TimeDelta
	// TimeDateTime emits the current time formatted with a Go layout
	TimeDateTime
)

// ErrInvalidTimeLayout is returned at sink construction for an unusable
// date-time layout.
var ErrInvalidTimeLayout = errors.New("invalid time layout")

// deltaState is the single mutable slot behind TimeDelta. The owning sink
// must hold its writer lock across the whole render so the read-replace
// sequence and the emitted bytes belong to one record.
type deltaState struct {
	mu   sync.Mutex
	last time.Time
}

// TimeConfig is the timestamp strategy of one sink.
type TimeConfig struct {
	mode   TimeMode
	start  time.Time
	layout string
	delta  *deltaState
}

// NoTime disables the timestamp field. This is the default.
func NoTime() TimeConfig {
	return TimeConfig{mode: TimeNone}
}

// UnixTime emits seconds since the unix epoch.
func UnixTime() TimeConfig {
	return TimeConfig{mode: TimeUnix}
}

// RelativeTime emits seconds elapsed since this call.
func RelativeTime() TimeConfig {
	return TimeConfig{mode: TimeRelative, start: time.Now()}
}

// DeltaTime emits seconds elapsed since the previous render; the first
// render emits zero.
func DeltaTime() TimeConfig {
	return TimeConfig{mode: TimeDelta, delta: &deltaState{}}
}

// DateTime emits the current time formatted with the given Go layout.
// The layout is validated when the owning sink is constructed.
func DateTime(layout string) TimeConfig {
	return TimeConfig{mode: TimeDateTime, layout: layout}
}

// Mode returns the configured timestamp mode.
func (c TimeConfig) Mode() TimeMode {
	return c.mode
}

// Validate rejects unusable configurations before a sink is installed.
func (c TimeConfig) Validate() error {
	if c.mode != TimeDateTime {
		return nil
	}
	if c.layout == "" {
		return fmt.Errorf("%w: empty layout", ErrInvalidTimeLayout)
	}
	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(c.layout, ref.Format(c.layout)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLayout, c.layout)
	}
	return nil
}

// Clone returns an independent copy. Delta state is not shared: the copy
// starts with an empty previous-render slot.
func (c TimeConfig) Clone() TimeConfig {
	if c.mode == TimeDelta {
		c.delta = &deltaState{}
	}
	return c
}

// stamp produces the timestamp text without the leading separator, or
// "" when the mode emits nothing. TimeDelta mutates its slot on every call.
func (c TimeConfig) stamp() string {
	switch c.mode {
	case TimeUnix:
		return fmt.Sprintf("%04d", time.Now().Unix())

	case TimeRelative:
		return elapsedString(time.Since(c.start))

	case TimeDelta:
		c.delta.mu.Lock()
		defer c.delta.mu.Unlock()
		var elapsed time.Duration
		if !c.delta.last.IsZero() {
			elapsed = time.Since(c.delta.last)
		}
		c.delta.last = time.Now()
		return elapsedString(elapsed)

	case TimeDateTime:
		return time.Now().Format(c.layout)

	default:
		return ""
	}
}

// elapsedString renders a duration as SSSS.NNNNNNNNNs
func elapsedString(d time.Duration) string {
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)
	return fmt.Sprintf("%04d.%09ds", secs, nanos)
}
