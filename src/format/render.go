package format

import (
	"bytes"

	"github.com/fatih/color"

	"alto/src/core"
)

// Continuation marker emitted before the message in multi-line style.
const continuationMark = "⤷"

// Renderer formats records into the fixed field order
//
//	LEVEL <timestamp> [target] message
//
// with an optional line break and continuation marker between target and
// message. Output is deterministic given the same clock and delta state.
type Renderer struct {
	opts   Options
	colors bool
}

// NewRenderer validates the options and captures the color decision.
// When colors is false the output is byte-identical to the colored
// rendition minus the escape sequences.
func NewRenderer(opts Options, colors bool) (*Renderer, error) {
	if err := opts.Time.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts, colors: colors}, nil
}

// Options returns the render configuration.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render formats one record. Callers sharing a delta timestamp must
// serialize Render with the write of its result.
func (r *Renderer) Render(rec core.Record) []byte {
	var buf bytes.Buffer

	r.field(&buf, r.opts.Color.level(rec.Level), rec.Level.Padded())

	if stamp := r.opts.Time.stamp(); stamp != "" {
		buf.WriteByte(' ')
		r.field(&buf, r.opts.Color.Timestamp, stamp)
	}

	buf.WriteString(" [")
	r.field(&buf, r.opts.Color.Target, rec.Target)
	buf.WriteByte(']')

	if r.opts.Style == MultiLine {
		buf.WriteByte('\n')
		r.field(&buf, r.opts.Color.Continuation, continuationMark)
	}

	buf.WriteByte(' ')
	r.field(&buf, r.opts.Color.Message, rec.Message)
	buf.WriteByte('\n')

	return buf.Bytes()
}

// field writes one colored field, resetting after it. Color is skipped
// when disabled for this renderer or globally.
func (r *Renderer) field(buf *bytes.Buffer, c *color.Color, s string) {
	if r.colors && c != nil {
		buf.WriteString(c.Sprint(s))
		return
	}
	buf.WriteString(s)
}
