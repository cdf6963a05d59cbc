package dao

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgtype"
)

// Record is the row accessor handed to a mapper.
//
// Getters look a value up by column name. A getter that does not fit the
// column's declared type, an unknown column, or a stored value of the wrong
// Go type records an error and returns the zero value; the engine checks Err
// after the mapper returns. Only the first error is kept.
//
// SQL NULL reads as the zero value.
type Record struct {
	d      *Descriptor
	values []any
	err    error
}

// NewRecord wraps one row of values laid out in d's select-column order.
func NewRecord(d *Descriptor, values []any) *Record {
	r := &Record{d: d, values: values}
	if len(values) != len(d.selectCols) {
		r.err = fmt.Errorf("%w: %s: row has %d values, select list has %d",
			ErrTypeMismatch, d.table, len(values), len(d.selectCols))
	}
	return r
}

// Err returns the first error recorded by a getter.
func (r *Record) Err() error { return r.err }

func (r *Record) lookup(col string, want ColumnType) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	pos, ok := r.d.selectPos[col]
	if !ok {
		r.err = fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.d.table, col)
		return nil, false
	}
	if declared := r.d.selectCols[pos].Type; declared != want {
		r.err = fmt.Errorf("%w: %s.%s is declared %s, read as %s",
			ErrTypeMismatch, r.d.table, col, declared, want)
		return nil, false
	}
	v := r.values[pos]
	return v, v != nil
}

func (r *Record) mismatch(col string, want ColumnType, v any) {
	r.err = fmt.Errorf("%w: %s.%s: cannot read %T as %s", ErrTypeMismatch, r.d.table, col, v, want)
}

// Text reads a text column.
func (r *Record) Text(col string) string {
	v, ok := r.lookup(col, TypeText)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		r.mismatch(col, TypeText, v)
		return ""
	}
}

// Int64 reads an integer column.
func (r *Record) Int64(col string) int64 {
	v, ok := r.lookup(col, TypeInteger)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int8:
		return int64(n)
	case int:
		return int64(n)
	default:
		r.mismatch(col, TypeInteger, v)
		return 0
	}
}

// Int reads an integer column into an int, failing on overflow.
func (r *Record) Int(col string) int {
	n := r.Int64(col)
	if n > math.MaxInt || n < math.MinInt {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %s.%s: %d overflows int", ErrTypeMismatch, r.d.table, col, n)
		}
		return 0
	}
	return int(n)
}

// Float reads a floating-point column. NUMERIC values are converted.
func (r *Record) Float(col string) float64 {
	v, ok := r.lookup(col, TypeFloat)
	if !ok {
		return 0
	}
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case pgtype.Numeric:
		f8, err := f.Float64Value()
		if err != nil {
			r.err = fmt.Errorf("%w: %s.%s: %v", ErrTypeMismatch, r.d.table, col, err)
			return 0
		}
		return f8.Float64
	default:
		r.mismatch(col, TypeFloat, v)
		return 0
	}
}

// Bool reads a boolean column.
func (r *Record) Bool(col string) bool {
	v, ok := r.lookup(col, TypeBool)
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	if !isBool {
		r.mismatch(col, TypeBool, v)
		return false
	}
	return b
}
