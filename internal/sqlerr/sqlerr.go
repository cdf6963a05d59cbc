// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the pgx driver, decides whether a failure
// is a connectivity problem or an execution problem, and converts errors
// into user-facing HTTP errors (e.g. a "unique violation" into a 400).
package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

// Code is our own classification of a SQLSTATE.
type Code string

const (
	Other                Code = "other"
	NotNullViolation     Code = "not_null_violation"
	ForeignKeyViolation  Code = "foreign_key_violation"
	UniqueViolation      Code = "unique_violation"
	CheckViolation       Code = "check_violation"
	ExclusionViolation   Code = "exclusion_violation"
	StringDataTruncation Code = "string_data_right_truncation"
	InvalidTextValue     Code = "invalid_text_representation"
	NumericOutOfRange    Code = "numeric_value_out_of_range"
	UndefinedTable       Code = "undefined_table"
	UndefinedColumn      Code = "undefined_column"
	SyntaxError          Code = "syntax_error"
	ConnectionException  Code = "connection_exception"
	AdminShutdown        Code = "admin_shutdown"
	TooManyConnections   Code = "too_many_connections"
)

// Severity mirrors the Postgres severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized Postgres error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22001":
		return StringDataTruncation
	case "22P02":
		return InvalidTextValue
	case "22003":
		return NumericOutOfRange
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "42601":
		return SyntaxError
	case "57P01":
		return AdminShutdown
	case "53300":
		return TooManyConnections
	}
	// Class 08: connection exception.
	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionException
	}
	return Other
}

// MapSeverity maps the severity string of a PgError.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(strings.ToUpper(severity))
	default:
		return SeverityError
	}
}

// IsConnectivity reports whether err means the store could not be reached
// or the connection was lost, as opposed to the store rejecting a statement.
//
// Covered:
//   - *pgconn.ConnectError (dial/auth failure while acquiring)
//   - puddle.ErrClosedPool (acquire from a closed pgxpool)
//   - pgconn.Timeout (connect or network timeout)
//   - SQLSTATE class 08, admin shutdown and too-many-connections
//
// Context cancellation by the caller is not connectivity and returns false.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, puddle.ErrClosedPool) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch MapCode(pgErr.Code) {
		case ConnectionException, AdminShutdown, TooManyConnections:
			return true
		default:
			return false
		}
	}

	return pgconn.Timeout(err)
}
