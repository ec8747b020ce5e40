package flow

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"alto/src/core"
	"alto/src/sink"
)

// Throttled caps how many records per second reach a child sink. Records
// over the limit are dropped, never queued, so the synchronous emit
// contract is preserved.
type Throttled struct {
	child   sink.Sink
	limiter *rate.Limiter

	droppedCount atomic.Uint64
}

// Throttle wraps a sink with a records-per-second cap. Burst defaults to
// the rate when not positive.
func Throttle(child sink.Sink, perSecond float64, burst int) *Throttled {
	if burst <= 0 {
		burst = int(perSecond)
		if burst < 1 {
			burst = 1
		}
	}

	return &Throttled{
		child:   child,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (t *Throttled) Enabled(level core.Level, target string) bool {
	return t.child.Enabled(level, target)
}

func (t *Throttled) Emit(rec core.Record) {
	if !t.limiter.Allow() {
		t.droppedCount.Add(1)
		return
	}
	t.child.Emit(rec)
}

func (t *Throttled) Flush() {
	t.child.Flush()
}

// Dropped returns how many records the cap has discarded.
func (t *Throttled) Dropped() uint64 {
	return t.droppedCount.Load()
}
