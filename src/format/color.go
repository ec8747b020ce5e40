package format

import (
	"github.com/fatih/color"

	"alto/src/core"
)

// ColorConfig assigns a color to each rendered field. A nil slot renders
// that field unstyled.
type ColorConfig struct {
	LevelTrace *color.Color
	LevelDebug *color.Color
	LevelInfo  *color.Color
	LevelWarn  *color.Color
	LevelError *color.Color

	Timestamp    *color.Color
	Target       *color.Color
	Continuation *color.Color
	Message      *color.Color
}

// DefaultColors returns the full palette
func DefaultColors() ColorConfig {
	return ColorConfig{
		LevelTrace: color.New(color.FgBlue),
		LevelDebug: color.New(color.FgCyan),
		LevelInfo:  color.New(color.FgGreen),
		LevelWarn:  color.New(color.FgYellow),
		LevelError: color.New(color.FgRed),

		Timestamp:    color.RGB(118, 118, 118),
		Target:       color.RGB(175, 95, 95),
		Continuation: color.RGB(58, 58, 58),
		Message:      color.RGB(255, 255, 255),
	}
}

// Monochrome returns an all-white palette
func Monochrome() ColorConfig {
	white := color.New(color.FgWhite)
	return ColorConfig{
		LevelTrace: white,
		LevelDebug: white,
		LevelInfo:  white,
		LevelWarn:  white,
		LevelError: white,

		Timestamp:    white,
		Target:       white,
		Continuation: white,
		Message:      white,
	}
}

// OnlyLevels colors the level field only, everything else is white
func OnlyLevels() ColorConfig {
	c := Monochrome()
	d := DefaultColors()
	c.LevelTrace = d.LevelTrace
	c.LevelDebug = d.LevelDebug
	c.LevelInfo = d.LevelInfo
	c.LevelWarn = d.LevelWarn
	c.LevelError = d.LevelError
	return c
}

// level returns the palette slot for a record level
func (c ColorConfig) level(l core.Level) *color.Color {
	switch l {
	case core.TraceLevel:
		return c.LevelTrace
	case core.DebugLevel:
		return c.LevelDebug
	case core.InfoLevel:
		return c.LevelInfo
	case core.WarnLevel:
		return c.LevelWarn
	case core.ErrorLevel:
		return c.LevelError
	default:
		return nil
	}
}
