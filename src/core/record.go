package core

// Record is a single log event flowing into the sinks.
//
// Target is a hierarchical "::"-delimited module path, coarsest scope first
// (e.g. "server::conn::read"). Message is already formatted; sinks never
// interpolate it further.
type Record struct {
	Level   Level
	Target  string
	Message string
}
