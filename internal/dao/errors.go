package dao

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an operation failed.
type ErrorKind int

const (
	// KindConnectivity: no connection could be acquired or the link to the
	// store broke mid-operation.
	KindConnectivity ErrorKind = iota + 1

	// KindExecution: the store rejected the statement (constraint violation,
	// malformed SQL, type mismatch on the server side).
	KindExecution

	// KindGeneratedKeyMissing: an insert of a store-assigned entity succeeded
	// but no usable identifier came back.
	KindGeneratedKeyMissing

	// KindMapping: a mapper or binder disagreed with the descriptor
	// (wrong type, unknown or missing column, missing caller-assigned key).
	KindMapping
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindExecution:
		return "execution"
	case KindGeneratedKeyMissing:
		return "generated_key_missing"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrConnectivity        = errors.New("dao: connectivity failure")
	ErrExecution           = errors.New("dao: execution failure")
	ErrGeneratedKeyMissing = errors.New("dao: store did not return a generated key")
	ErrMapping             = errors.New("dao: mapping failure")
)

// Detail errors wrapped inside a KindMapping *Error.
var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrUnknownColumn = errors.New("unknown column")
	ErrMissingColumn = errors.New("column not bound")
	ErrMissingKey    = errors.New("caller-assigned key is empty")
)

// ErrInvalidDescriptor is returned by NewDescriptor and New for metadata
// that would produce wrong SQL.
var ErrInvalidDescriptor = errors.New("dao: invalid descriptor")

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConnectivity:
		return ErrConnectivity
	case KindExecution:
		return ErrExecution
	case KindGeneratedKeyMissing:
		return ErrGeneratedKeyMissing
	case KindMapping:
		return ErrMapping
	default:
		return nil
	}
}

// Error is returned by every Engine operation that fails.
//
// Err is the underlying cause; errors.As can reach a *pgconn.PgError
// through it.
type Error struct {
	Op    string
	Table string
	Kind  ErrorKind
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dao: %s %s: %s", e.Op, e.Table, e.Kind)
	}
	return fmt.Sprintf("dao: %s %s: %s: %v", e.Op, e.Table, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConnectivity) and friends work on the kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var daoErr *Error
	if errors.As(err, &daoErr) {
		return daoErr.Kind
	}
	return 0
}
