package dao

import (
	"fmt"
)

// Params is the statement-parameter sink handed to a binder.
//
// Setters are keyed by column name and place the value at the ordinal the
// descriptor assigns to that value column. A setter whose type disagrees
// with the column's declared type, an unknown column, or a column left
// unset is an error; nothing is truncated or coerced.
type Params struct {
	d    *Descriptor
	args []any
	set  []bool
	err  error
}

// NewParams returns an empty sink for d's value columns.
func NewParams(d *Descriptor) *Params {
	return &Params{
		d:    d,
		args: make([]any, len(d.values)),
		set:  make([]bool, len(d.values)),
	}
}

func (p *Params) put(col string, typ ColumnType, v any) {
	if p.err != nil {
		return
	}
	pos, ok := p.d.valuePos[col]
	if !ok {
		if col == p.d.id.Name {
			p.err = fmt.Errorf("%w: %s.%s is the identifier and is bound by the engine",
				ErrUnknownColumn, p.d.table, col)
			return
		}
		p.err = fmt.Errorf("%w: %s.%s", ErrUnknownColumn, p.d.table, col)
		return
	}
	if declared := p.d.values[pos].Type; declared != typ {
		p.err = fmt.Errorf("%w: %s.%s is declared %s, bound as %s",
			ErrTypeMismatch, p.d.table, col, declared, typ)
		return
	}
	p.args[pos] = v
	p.set[pos] = true
}

// Text binds a text value.
func (p *Params) Text(col string, v string) { p.put(col, TypeText, v) }

// Int binds an integer value.
func (p *Params) Int(col string, v int) { p.put(col, TypeInteger, int64(v)) }

// Int64 binds an integer value.
func (p *Params) Int64(col string, v int64) { p.put(col, TypeInteger, v) }

// Float binds a floating-point value.
func (p *Params) Float(col string, v float64) { p.put(col, TypeFloat, v) }

// Bool binds a boolean value.
func (p *Params) Bool(col string, v bool) { p.put(col, TypeBool, v) }

// Null binds SQL NULL to a column of any type.
func (p *Params) Null(col string) {
	if pos, ok := p.d.valuePos[col]; ok {
		p.put(col, p.d.values[pos].Type, nil)
		return
	}
	p.put(col, TypeText, nil)
}

// Err returns the first setter error, or ErrMissingColumn naming the first
// value column that was never bound.
func (p *Params) Err() error {
	if p.err != nil {
		return p.err
	}
	for i, ok := range p.set {
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrMissingColumn, p.d.table, p.d.values[i].Name)
		}
	}
	return nil
}

// Args returns the bound values in value-column order.
func (p *Params) Args() []any {
	return append([]any(nil), p.args...)
}
