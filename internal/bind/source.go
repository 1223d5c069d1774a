package bind

import (
	"context"
	"errors"
)

// ErrUnsupportedOperation is returned (possibly wrapped) by a Source that
// does not expose an operation. The engine treats it as a diagnostic.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Cursor iterates a tabular result. *sql.Rows satisfies it.
type Cursor interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Result is the outcome of one operation: Rows for tabular results, Value
// for scalar ones.
type Result struct {
	Rows  Cursor
	Value any
}

// Tabular reports whether the result carries rows.
func (r Result) Tabular() bool {
	return r.Rows != nil
}

// Source exposes named metadata operations.
type Source interface {
	Invoke(ctx context.Context, op string, args ...any) (Result, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, op string, args ...any) (Result, error)

// Invoke calls f.
func (f SourceFunc) Invoke(ctx context.Context, op string, args ...any) (Result, error) {
	return f(ctx, op, args...)
}

// Scalar wraps a single value.
func Scalar(v any) Result {
	return Result{Value: v}
}

// Tabular wraps a cursor.
func Tabular(rows Cursor) Result {
	return Result{Rows: rows}
}
