package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Value wraps a single cell value and provides type conversion helpers.
// Values are read-only; an edit produces a new Value rather than mutating
// the one held by the store.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	i, ok := v.Raw.(int64)
	if !ok {
		return 0, errors.Errorf("value is not an int64: %T", v.Raw)
	}
	return int(i), nil
}

// Float returns the value as a float64, widening integral values.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	case int32:
		return float64(raw), nil
	case int:
		return float64(raw), nil
	}
	return 0, errors.Errorf("value is not numeric: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Row is one table row as an ordered list of values.
// Position zero carries the store's row id; the remaining positions
// correspond to the fields returned by Store.GetView.
type Row []Value

// Id returns the store row id.
func (row Row) Id() string {
	if len(row) == 0 {
		return ""
	}
	if i, err := row[0].Int(); err == nil {
		return strconv.Itoa(i)
	}
	return row[0].String()
}

// At returns the value for a field index, counting from after the row id.
func (row Row) At(fieldIdx int) Value {
	idx := fieldIdx + 1
	if idx < 1 || idx >= len(row) {
		return Value{}
	}
	return row[idx]
}
