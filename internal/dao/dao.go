// Package dao is the generic data-access layer.
//
// A single Engine implements getAll/find/add/update/delete for any entity.
// What differs between entities is captured as data and two pure functions:
//
//   - Descriptor: table name, identifier column, value columns and the
//     identifier strategy (caller-assigned or store-assigned). All SQL text
//     is rendered once, when the descriptor is built.
//   - Map:  *Record -> T      (one fetched row into an entity)
//   - Bind: T -> *Params      (an entity's values into ordered statement parameters)
//
// Every statement parameter goes through pgx placeholders; values are never
// concatenated into SQL text.
package dao

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the connection provider the engine runs statements against.
//
// *pgxpool.Pool satisfies it and is the normal production value: each call
// acquires a pooled connection and releases it when the command finishes
// (Exec) or when the returned rows are closed (Query). *pgxpool.Conn and
// pgx.Tx satisfy it too, which lets callers scope several operations to one
// connection or transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Key is the set of Go types an entity identifier may have.
// Text identifiers use a string type, store-assigned ones an integer type.
type Key interface {
	~string | ~int | ~int32 | ~int64
}
