package config

import (
	"fmt"
	"strings"

	"alto/src/filter"
	"alto/src/flow"
	"alto/src/format"
	"alto/src/sink"
)

// Build assembles the configured sink tree: each enabled destination
// becomes a sink with its own render options and filters, rate-capped
// when asked, fanned out when there is more than one.
func (c *Config) Build() (sink.Sink, error) {
	filters := filter.FromEnv()
	if c.Filter != "" {
		filters = filter.FromString(c.Filter)
	}

	var sinks []sink.Sink

	if c.Terminal.Enabled {
		opts, err := buildOptions(c.Terminal.Style, c.Terminal.Time, c.Terminal.TimeLayout)
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		opts = opts.WithColor(buildPalette(c.Terminal.Colors))

		t, err := sink.NewTerminal(opts)
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		t.WithFilters(filters)
		sinks = append(sinks, throttled(t, c.Terminal.RateLimit, c.Terminal.RateBurst))
	}

	for i, fc := range c.Files {
		opts, err := buildOptions(fc.Style, fc.Time, fc.TimeLayout)
		if err != nil {
			return nil, fmt.Errorf("file[%d]: %w", i, err)
		}

		var f *sink.File
		switch strings.ToLower(fc.Mode) {
		case "", "append":
			f, err = sink.Append(opts, fc.Path)
		case "truncate":
			f, err = sink.Truncate(opts, fc.Path)
		case "timestamp":
			f, err = sink.Timestamped(opts, fc.Path)
		default:
			return nil, fmt.Errorf("file[%d]: unknown mode %q", i, fc.Mode)
		}
		if err != nil {
			return nil, fmt.Errorf("file[%d]: %w", i, err)
		}
		f.WithFilters(filters)
		sinks = append(sinks, throttled(f, fc.RateLimit, fc.RateBurst))
	}

	switch len(sinks) {
	case 0:
		return nil, fmt.Errorf("no sinks enabled")
	case 1:
		return sinks[0], nil
	default:
		return sink.NewMulti(sinks...).WithFilters(filters), nil
	}
}

func throttled(s sink.Sink, perSecond float64, burst int) sink.Sink {
	if perSecond <= 0 {
		return s
	}
	return flow.Throttle(s, perSecond, burst)
}

func buildOptions(style, timeMode, layout string) (format.Options, error) {
	opts := format.DefaultOptions()

	switch strings.ToLower(style) {
	case "", "multi":
		opts = opts.WithStyle(format.MultiLine)
	case "single":
		opts = opts.WithStyle(format.SingleLine)
	}

	switch strings.ToLower(timeMode) {
	case "", "none":
		opts = opts.WithTime(format.NoTime())
	case "unix":
		opts = opts.WithTime(format.UnixTime())
	case "relative":
		opts = opts.WithTime(format.RelativeTime())
	case "delta":
		opts = opts.WithTime(format.DeltaTime())
	case "datetime":
		tc := format.DateTime(layout)
		if err := tc.Validate(); err != nil {
			return opts, err
		}
		opts = opts.WithTime(tc)
	}

	return opts, nil
}

func buildPalette(colors string) format.ColorConfig {
	switch strings.ToLower(colors) {
	case "levels":
		return format.OnlyLevels()
	case "monochrome":
		return format.Monochrome()
	default:
		return format.DefaultColors()
	}
}
