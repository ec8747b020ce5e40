package filter

import (
	"os"
	"strings"

	"alto/src/core"
)

// EnvVar is the environment variable holding the default filter spec.
const EnvVar = "ALTO_FILTER"

// Specs below this many rules use a linear scan instead of a map.
const listThreshold = 15

type rule struct {
	target string
	level  core.Level
}

// Filters resolves whether a record's level is enabled for its target.
//
// A spec is a comma-separated list of tokens. "path::to::module=level" sets
// a threshold for that module subtree, a bare level name sets the global
// minimum used when no path matches. Malformed tokens are dropped.
//
// Filters is immutable after construction and safe for concurrent lookups.
type Filters struct {
	list []rule
	m    map[string]core.Level

	minimum    core.Level
	hasMinimum bool
}

// FromString parses a filter spec. The same input always yields filters
// with identical behavior.
func FromString(input string) *Filters {
	f := &Filters{}

	var rules []rule
	for _, token := range strings.Split(input, ",") {
		if !strings.Contains(token, "=") {
			// Bare level tokens combine into the global minimum, keeping
			// the most verbose. An explicit "off" never becomes the minimum.
			level, err := core.ParseLevel(token)
			if err != nil || level == core.OffLevel {
				continue
			}
			if !f.hasMinimum || level < f.minimum {
				f.minimum = level
				f.hasMinimum = true
			}
			continue
		}

		target, levelName, _ := strings.Cut(token, "=")
		level, err := core.ParseLevel(levelName)
		if err != nil {
			continue
		}
		rules = append(rules, rule{target: target, level: level})
	}

	switch {
	case len(rules) == 0:
	case len(rules) < listThreshold:
		f.list = rules
	default:
		f.m = make(map[string]core.Level, len(rules))
		for _, r := range rules {
			f.m[r.target] = r.level
		}
	}

	return f
}

// FromEnv parses the filter spec from the ALTO_FILTER environment variable.
// An unset variable yields filters that enable nothing.
func FromEnv() *Filters {
	return FromString(os.Getenv(EnvVar))
}

// IsEnabled reports whether a record at the given level and target passes.
func (f *Filters) IsEnabled(level core.Level, target string) bool {
	threshold, ok := f.Find(target)
	if !ok {
		return false
	}
	return level >= threshold && threshold != core.OffLevel
}

// Find resolves the threshold for a target: exact match first, then each
// ancestor at a "::" boundary from most to least specific, then the global
// minimum. Reports false when nothing applies.
func (f *Filters) Find(target string) (core.Level, bool) {
	// A spec with no path rules fails closed, even when a bare minimum
	// was given.
	if f.list == nil && f.m == nil {
		return 0, false
	}

	if level, ok := f.findExact(target); ok {
		return level, true
	}

	for i := strings.LastIndex(target, "::"); i >= 0; i = strings.LastIndex(target[:i], "::") {
		if level, ok := f.findExact(target[:i]); ok {
			return level, true
		}
	}

	if f.hasMinimum {
		return f.minimum, true
	}
	return 0, false
}

func (f *Filters) findExact(target string) (core.Level, bool) {
	if f.m != nil {
		level, ok := f.m[target]
		return level, ok
	}
	for _, r := range f.list {
		if r.target == target {
			return r.level, true
		}
	}
	return 0, false
}
