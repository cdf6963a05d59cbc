package dao

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/northwind/internal/sqlerr"
)

// Table binds a Descriptor to the functions that cross between rows and
// entity values of type T identified by K.
type Table[T any, K Key] struct {
	Descriptor *Descriptor

	// Map builds an entity from a fetched row. It reads through the Record
	// getters and must not retain the Record.
	Map func(r *Record) T

	// Bind writes every value column of e into p. The identifier is bound
	// by the engine and must not be set here.
	Bind func(e T, p *Params)

	// ID returns e's identifier.
	ID func(e T) K

	// SetID stores a store-generated identifier on e. Required for
	// StoreAssigned descriptors, unused otherwise.
	SetID func(e *T, id K)
}

// Engine implements CRUD for one entity type. It holds no per-call state and
// is safe for concurrent use; concurrency control is the pool's and the
// store's business.
type Engine[T any, K Key] struct {
	db    DBTX
	table Table[T, K]
	d     *Descriptor
	log   zerolog.Logger
	slow  time.Duration
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *zerolog.Logger
	slow   time.Duration
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSlowThreshold logs operations slower than d at warn level. Zero disables it.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *options) { o.slow = d }
}

// New checks that table is complete and consistent with K, then returns an engine.
func New[T any, K Key](db DBTX, table Table[T, K], opts ...Option) (*Engine[T, K], error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil DBTX", ErrInvalidDescriptor)
	}
	d := table.Descriptor
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if table.Map == nil || table.Bind == nil || table.ID == nil {
		return nil, fmt.Errorf("%w: %s: Map, Bind and ID are required", ErrInvalidDescriptor, d.table)
	}
	if d.strategy == StoreAssigned && table.SetID == nil {
		return nil, fmt.Errorf("%w: %s: SetID is required for a store-assigned id", ErrInvalidDescriptor, d.table)
	}
	if kt := reflect.TypeFor[K](); !d.id.Type.accepts(kt) {
		return nil, fmt.Errorf("%w: %s: key type %s does not fit %s column %q",
			ErrInvalidDescriptor, d.table, kt, d.id.Type, d.id.Name)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine[T, K]{
		db:    db,
		table: table,
		d:     d,
		log:   zerolog.Nop(),
		slow:  o.slow,
	}
	if o.logger != nil {
		e.log = o.logger.With().Str("table", d.table).Logger()
	}
	return e, nil
}

// Descriptor returns the engine's metadata.
func (e *Engine[T, K]) Descriptor() *Descriptor { return e.d }

// GetAll returns every row of the table ordered by identifier. Zero rows is
// an empty, non-nil slice; any failure is returned, never swallowed.
func (e *Engine[T, K]) GetAll(ctx context.Context) ([]T, error) {
	const op = "get_all"
	defer e.observe(ctx, op, time.Now())

	rows, err := e.db.Query(ctx, e.d.stmts.selectAll)
	if err != nil {
		return nil, e.fail(ctx, op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		entity, mapErr := e.mapRow(rows.Values())
		if mapErr != nil {
			return nil, e.fail(ctx, op, mapErr)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, e.fail(ctx, op, err)
	}
	return out, nil
}

// Find looks an entity up by identifier. found is false with a nil error
// when no row matches; extra rows, which the schema should make impossible,
// are ignored.
func (e *Engine[T, K]) Find(ctx context.Context, id K) (entity T, found bool, err error) {
	const op = "find"
	defer e.observe(ctx, op, time.Now())

	rows, err := e.db.Query(ctx, e.d.stmts.selectByID, keyArg(id))
	if err != nil {
		return entity, false, e.fail(ctx, op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return entity, false, e.fail(ctx, op, err)
		}
		return entity, false, nil
	}

	entity, err = e.mapRow(rows.Values())
	if err != nil {
		var zero T
		return zero, false, e.fail(ctx, op, err)
	}

	rows.Close()
	if err := rows.Err(); err != nil {
		var zero T
		return zero, false, e.fail(ctx, op, err)
	}
	return entity, true, nil
}

// Add inserts entity and returns it.
//
// For a caller-assigned identifier the key is bound as the first insert
// parameter and must not be empty. For a store-assigned identifier the key
// is left out of the statement, read back through RETURNING and set on the
// returned copy; a missing or zero key is ErrGeneratedKeyMissing.
func (e *Engine[T, K]) Add(ctx context.Context, entity T) (T, error) {
	const op = "add"
	defer e.observe(ctx, op, time.Now())

	args, err := e.bind(entity)
	if err != nil {
		return entity, e.fail(ctx, op, err)
	}

	if e.d.strategy == CallerAssigned {
		id := e.table.ID(entity)
		var zero K
		if id == zero {
			return entity, e.fail(ctx, op, fmt.Errorf("%w: %s.%s", ErrMissingKey, e.d.table, e.d.id.Name))
		}
		args = append([]any{keyArg(id)}, args...)

		if _, err := e.db.Exec(ctx, e.d.stmts.insert, args...); err != nil {
			return entity, e.fail(ctx, op, err)
		}
		return entity, nil
	}

	id, err := e.insertReturning(ctx, args)
	if err != nil {
		return entity, e.fail(ctx, op, err)
	}
	e.table.SetID(&entity, id)

	e.logger(ctx).Debug().
		Str("op", op).
		Any("id", id).
		Msg("store assigned identifier")

	return entity, nil
}

// insertReturning runs the insert and reads the generated key on the same
// round trip.
func (e *Engine[T, K]) insertReturning(ctx context.Context, args []any) (K, error) {
	var id K

	rows, err := e.db.Query(ctx, e.d.stmts.insert, args...)
	if err != nil {
		return id, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return id, err
		}
		return id, &Error{Kind: KindGeneratedKeyMissing, Err: fmt.Errorf("no row returned for %s", e.d.id.Name)}
	}

	values, err := rows.Values()
	if err != nil {
		return id, err
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return id, err
	}

	if len(values) != 1 || values[0] == nil {
		return id, &Error{Kind: KindGeneratedKeyMissing, Err: fmt.Errorf("%s came back empty", e.d.id.Name)}
	}
	if err := setKey(&id, values[0]); err != nil {
		return id, err
	}
	var zero K
	if id == zero {
		return id, &Error{Kind: KindGeneratedKeyMissing, Err: fmt.Errorf("%s came back as zero", e.d.id.Name)}
	}
	return id, nil
}

// Update writes every value column of entity to the row with its identifier.
// Zero affected rows is not an error; it is logged at warn level.
func (e *Engine[T, K]) Update(ctx context.Context, entity T) error {
	const op = "update"
	defer e.observe(ctx, op, time.Now())

	args, err := e.bind(entity)
	if err != nil {
		return e.fail(ctx, op, err)
	}
	id := e.table.ID(entity)
	args = append(args, keyArg(id))

	tag, err := e.db.Exec(ctx, e.d.stmts.update, args...)
	if err != nil {
		return e.fail(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		e.logger(ctx).Warn().
			Str("op", op).
			Any("id", id).
			Msg("update matched no rows")
	}
	return nil
}

// Delete removes the row with identifier id. Deleting a missing row is a no-op.
func (e *Engine[T, K]) Delete(ctx context.Context, id K) error {
	const op = "delete"
	defer e.observe(ctx, op, time.Now())

	tag, err := e.db.Exec(ctx, e.d.stmts.delete, keyArg(id))
	if err != nil {
		return e.fail(ctx, op, err)
	}
	e.logger(ctx).Debug().
		Str("op", op).
		Any("id", id).
		Int64("rows_affected", tag.RowsAffected()).
		Msg("delete executed")
	return nil
}

// Count returns the number of rows in the table.
func (e *Engine[T, K]) Count(ctx context.Context) (int64, error) {
	const op = "count"
	defer e.observe(ctx, op, time.Now())

	var n int64
	if err := e.db.QueryRow(ctx, e.d.stmts.count).Scan(&n); err != nil {
		return 0, e.fail(ctx, op, err)
	}
	return n, nil
}

func (e *Engine[T, K]) mapRow(values []any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	rec := NewRecord(e.d, values)
	if rec.Err() != nil {
		return zero, &Error{Kind: KindMapping, Err: rec.Err()}
	}
	entity := e.table.Map(rec)
	if rec.Err() != nil {
		return zero, &Error{Kind: KindMapping, Err: rec.Err()}
	}
	return entity, nil
}

func (e *Engine[T, K]) bind(entity T) ([]any, error) {
	p := NewParams(e.d)
	e.table.Bind(entity, p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Args(), nil
}

// fail classifies err and stamps op and table on it. The debug line keeps
// the dao-level detail; callers own the error-level log.
func (e *Engine[T, K]) fail(ctx context.Context, op string, err error) error {
	daoErr := e.classify(op, err)

	e.logger(ctx).Debug().
		Err(daoErr.Err).
		Str("op", op).
		Str("error_kind", daoErr.Kind.String()).
		Msg("dao operation failed")

	return daoErr
}

func (e *Engine[T, K]) classify(op string, err error) *Error {
	if inner, ok := err.(*Error); ok {
		inner.Op, inner.Table = op, e.d.table
		return inner
	}

	kind := KindExecution
	switch {
	case isMappingErr(err):
		kind = KindMapping
	case sqlerr.IsConnectivity(err):
		kind = KindConnectivity
	}
	return &Error{Op: op, Table: e.d.table, Kind: kind, Err: err}
}

func (e *Engine[T, K]) observe(ctx context.Context, op string, start time.Time) {
	elapsed := time.Since(start)
	if e.slow > 0 && elapsed > e.slow {
		e.logger(ctx).Warn().
			Str("op", op).
			Dur("duration", elapsed).
			Dur("threshold", e.slow).
			Msg("slow dao operation")
	}
}

// logger prefers the request-scoped logger carried by ctx.
func (e *Engine[T, K]) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled && l != zerolog.DefaultContextLogger {
		scoped := l.With().Str("table", e.d.table).Logger()
		return &scoped
	}
	return &e.log
}
