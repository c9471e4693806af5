// Package format converts cell values between their typed form and the
// strings shown in the table or typed into an editor.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cellier/entity"
)

const (
	DefaultDateFormat     = "2006-01-02"
	DefaultDateTimeFormat = "2006-01-02 15:04:05"
)

// FormatError reports an edit buffer that cannot be parsed into the
// column's type. It is recoverable: the cell stays in edit mode and no
// commit is reported.
type FormatError struct {
	Type  entity.ColType
	Input string
	Err   error
}

func (fe *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", fe.Input, fe.Type, fe.Err)
}

func (fe *FormatError) Unwrap() error {
	return fe.Err
}

// Formatter converts between a typed Value and its string representation.
//
// Parse(Format(v)) == v for any representable v under a fixed config,
// except where the configured pattern is lossy. A date layout without
// seconds, or a number verb like "%.1f", drops precision on Format and the
// round trip returns the truncated value.
type Formatter interface {
	// Format renders a value for display and for seeding an edit buffer
	Format(val entity.Value) string
	// Parse converts an edit buffer back into a typed value
	Parse(input string) (entity.Value, error)
}

// New returns the formatter for a column type. Unknown types format as text.
func New(typ entity.ColType, cfg entity.FormatConfig) Formatter {

	switch typ {
	case entity.Bool:
		return boolFmt{}
	case entity.Date:
		return dateFmt{typ: typ, layout: orDefault(cfg.DateFormat, DefaultDateFormat), cfg: cfg}
	case entity.DateTime:
		return dateFmt{typ: typ, layout: orDefault(cfg.DateTimeFormat, DefaultDateTimeFormat), cfg: cfg}
	case entity.Number:
		return numberFmt{verb: cfg.NumberFormat}
	default:
		return textFmt{}
	}
}

// unexported

func orDefault(layout, fallback string) string {
	if layout == "" {
		return fallback
	}
	return layout
}

// textFmt is identity formatting; parse cannot fail.
type textFmt struct{}

func (textFmt) Format(val entity.Value) string {
	return val.String()
}

func (textFmt) Parse(input string) (entity.Value, error) {
	return entity.Value{Raw: input}, nil
}

// boolFmt passes booleans through. The cell never routes booleans
// through a text buffer, this exists so every column type formats.
type boolFmt struct{}

func (boolFmt) Format(val entity.Value) string {
	b, err := val.Bool()
	if err != nil {
		return val.String()
	}
	return strconv.FormatBool(b)
}

func (boolFmt) Parse(input string) (entity.Value, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return entity.Value{}, &FormatError{Type: entity.Bool, Input: input, Err: err}
	}
	return entity.Value{Raw: b}, nil
}

// numberFmt renders with an fmt verb when configured, and otherwise with
// the shortest representation that round-trips.
type numberFmt struct {
	verb string
}

func (nf numberFmt) Format(val entity.Value) string {
	f, err := val.Float()
	if err != nil {
		return val.String()
	}
	if nf.verb != "" {
		return fmt.Sprintf(nf.verb, f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (nf numberFmt) Parse(input string) (entity.Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return entity.Value{}, &FormatError{Type: entity.Number, Input: input, Err: err}
	}
	return entity.Value{Raw: f}, nil
}

// dateFmt covers both date and datetime columns, differing only in layout.
type dateFmt struct {
	typ    entity.ColType
	layout string
	cfg    entity.FormatConfig
}

func (df dateFmt) Format(val entity.Value) string {

	t, err := val.Time()
	if err != nil {
		return val.String()
	}

	// a time.Time always carries a zone, so "value's own zone" is the
	// zone it arrived with unless the config forces the table zone
	if df.cfg.ForceTZ {
		loc, err := df.cfg.Location()
		if err == nil {
			t = t.In(loc)
		}
	}

	return t.Format(df.layout)
}

func (df dateFmt) Parse(input string) (entity.Value, error) {

	loc, err := df.cfg.Location()
	if err != nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(df.layout, strings.TrimSpace(input), loc)
	if err != nil {
		return entity.Value{}, &FormatError{Type: df.typ, Input: input, Err: err}
	}

	return entity.Value{Raw: t}, nil
}
