package dao

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// IDStrategy tells the engine who produces an entity's identifier.
// The zero value is invalid so a descriptor cannot be built without choosing.
type IDStrategy uint8

const (
	// CallerAssigned: the caller supplies the key; it is part of the insert
	// column list and bound like any other value.
	CallerAssigned IDStrategy = iota + 1

	// StoreAssigned: the store generates the key on insert (serial/identity).
	// It is left out of the insert column list and read back with RETURNING.
	StoreAssigned
)

func (s IDStrategy) String() string {
	switch s {
	case CallerAssigned:
		return "caller_assigned"
	case StoreAssigned:
		return "store_assigned"
	default:
		return "invalid"
	}
}

// Descriptor is immutable per-entity metadata. Build it with NewDescriptor.
type Descriptor struct {
	table    string
	id       Column
	strategy IDStrategy
	values   []Column

	// selectCols is id first, then values; positions match Record values.
	selectCols []Column
	selectPos  map[string]int
	valuePos   map[string]int

	stmts statements
}

// statements holds the SQL rendered once at construction.
type statements struct {
	selectAll  string
	selectByID string
	insert     string
	update     string
	delete     string
	count      string
}

// NewDescriptor validates the metadata and renders every statement.
//
// Rules:
//   - table, id and every value column need a name and a known type
//   - column names are unique and the id column is not repeated in values
//   - a StoreAssigned id must be an integer column
//   - there is at least one value column (UPDATE needs a SET list)
func NewDescriptor(table string, id Column, strategy IDStrategy, values ...Column) (*Descriptor, error) {
	if table == "" {
		return nil, fmt.Errorf("%w: empty table name", ErrInvalidDescriptor)
	}
	if strategy != CallerAssigned && strategy != StoreAssigned {
		return nil, fmt.Errorf("%w: %s: unknown id strategy %d", ErrInvalidDescriptor, table, strategy)
	}
	if strategy == StoreAssigned && id.Type != TypeInteger {
		return nil, fmt.Errorf("%w: %s: store-assigned id %q must be integer, got %s",
			ErrInvalidDescriptor, table, id.Name, id.Type)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s: no value columns", ErrInvalidDescriptor, table)
	}

	d := &Descriptor{
		table:     table,
		id:        id,
		strategy:  strategy,
		values:    append([]Column(nil), values...),
		selectPos: make(map[string]int, len(values)+1),
		valuePos:  make(map[string]int, len(values)),
	}

	d.selectCols = append([]Column{id}, d.values...)
	for i, c := range d.selectCols {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: %s: column %d has no name", ErrInvalidDescriptor, table, i)
		}
		if !c.Type.valid() {
			return nil, fmt.Errorf("%w: %s: column %q has unknown type", ErrInvalidDescriptor, table, c.Name)
		}
		if _, dup := d.selectPos[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate column %q", ErrInvalidDescriptor, table, c.Name)
		}
		d.selectPos[c.Name] = i
	}
	for i, c := range d.values {
		d.valuePos[c.Name] = i
	}

	d.stmts = d.render()
	return d, nil
}

// MustDescriptor is NewDescriptor for package-level metadata; it panics on error.
func MustDescriptor(table string, id Column, strategy IDStrategy, values ...Column) *Descriptor {
	d, err := NewDescriptor(table, id, strategy, values...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Descriptor) render() statements {
	table := quote(d.table)
	idCol := quote(d.id.Name)

	selectList := joinQuoted(d.selectCols)
	insertCols := d.insertColumns()
	insertList := joinQuoted(insertCols)

	setList := make([]string, len(d.values))
	for i, c := range d.values {
		setList[i] = fmt.Sprintf("%s = $%d", quote(c.Name), i+1)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, insertList, placeholders(len(insertCols)))
	if d.strategy == StoreAssigned {
		insert += " RETURNING " + idCol
	}

	return statements{
		selectAll:  fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectList, table, idCol),
		selectByID: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectList, table, idCol),
		insert:     insert,
		update: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			table, strings.Join(setList, ", "), idCol, len(d.values)+1),
		delete: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idCol),
		count:  fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}
}

func (d *Descriptor) insertColumns() []Column {
	if d.strategy == StoreAssigned {
		return append([]Column(nil), d.values...)
	}
	return append([]Column{d.id}, d.values...)
}

// Table returns the table name.
func (d *Descriptor) Table() string { return d.table }

// ID returns the identifier column.
func (d *Descriptor) ID() Column { return d.id }

// Strategy returns the identifier strategy.
func (d *Descriptor) Strategy() IDStrategy { return d.strategy }

// SelectColumns returns the select list: identifier first, then value columns.
func (d *Descriptor) SelectColumns() []Column {
	return append([]Column(nil), d.selectCols...)
}

// InsertColumns returns the insert list. It never contains a store-assigned id.
func (d *Descriptor) InsertColumns() []Column {
	return d.insertColumns()
}

// ValueColumns returns the non-identifier columns in binding order.
func (d *Descriptor) ValueColumns() []Column {
	return append([]Column(nil), d.values...)
}

// SelectAllSQL, SelectByIDSQL, InsertSQL, UpdateSQL, DeleteSQL and CountSQL
// expose the rendered statements for logging and tests.
func (d *Descriptor) SelectAllSQL() string  { return d.stmts.selectAll }
func (d *Descriptor) SelectByIDSQL() string { return d.stmts.selectByID }
func (d *Descriptor) InsertSQL() string     { return d.stmts.insert }
func (d *Descriptor) UpdateSQL() string     { return d.stmts.update }
func (d *Descriptor) DeleteSQL() string     { return d.stmts.delete }
func (d *Descriptor) CountSQL() string      { return d.stmts.count }

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func joinQuoted(cols []Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c.Name)
	}
	return strings.Join(names, ", ")
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ", ")
}
