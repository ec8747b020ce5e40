package sink

import (
	"alto/src/core"
)

// Sink is an output destination for log records.
//
// Implementations are synchronous and safe for concurrent use from many
// goroutines. Emit never returns an error: once a sink is constructed,
// write failures are swallowed so logging cannot disturb the caller's
// control flow.
type Sink interface {
	// Enabled reports whether this sink accepts records at the given
	// level and target, per the sink's own filters
	Enabled(level core.Level, target string) bool

	// Emit filters, renders and writes one record
	Emit(rec core.Record)

	// Flush pushes buffered bytes to the destination, best effort
	Flush()
}
