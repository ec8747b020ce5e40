package format

// StyleConfig selects the line-breaking style of rendered records.
type StyleConfig int

const (
	// MultiLine breaks after the target and continues the message on its
	// own line behind a continuation marker. This is the default.
	MultiLine StyleConfig = iota
	// SingleLine keeps the whole record on one line.
	SingleLine
)
