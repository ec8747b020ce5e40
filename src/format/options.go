package format

// Options is the immutable render configuration of one sink.
type Options struct {
	Style StyleConfig
	Color ColorConfig
	Time  TimeConfig
}

// DefaultOptions is multi-line, full color, no timestamp.
func DefaultOptions() Options {
	return Options{
		Style: MultiLine,
		Color: DefaultColors(),
		Time:  NoTime(),
	}
}

// WithStyle returns a copy using this line style
func (o Options) WithStyle(style StyleConfig) Options {
	o.Style = style
	return o
}

// WithColor returns a copy using this palette
func (o Options) WithColor(color ColorConfig) Options {
	o.Color = color
	return o
}

// WithTime returns a copy using this timestamp strategy
func (o Options) WithTime(time TimeConfig) Options {
	o.Time = time
	return o
}

// Clone returns an independent copy; per-sink mutable timestamp state is
// not shared between the copies.
func (o Options) Clone() Options {
	o.Time = o.Time.Clone()
	return o
}
