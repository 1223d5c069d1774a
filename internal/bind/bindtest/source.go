// Package bindtest provides an in-memory bind.Source for tests.
package bindtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Call is one recorded invocation.
type Call struct {
	Op   string
	Args []any
}

type handler func(args []any) (bind.Result, error)

// Source answers operations from registered handlers and records every call.
// Operations without a handler fail with bind.ErrUnsupportedOperation.
type Source struct {
	mu       sync.Mutex
	handlers map[string]handler
	calls    []Call
	open     int
	maxOpen  int

	// CloseError is returned by every cursor's Close.
	CloseError error
}

// New returns an empty fake source.
func New() *Source {
	return &Source{handlers: make(map[string]handler)}
}

// Rows answers op with the same rows for any arguments.
func (s *Source) Rows(op string, labels []string, rows ...[]any) *Source {
	return s.RowsFunc(op, func([]any) ([]string, [][]any) { return labels, rows })
}

// RowsFunc answers op with rows computed from the arguments.
func (s *Source) RowsFunc(op string, fn func(args []any) ([]string, [][]any)) *Source {
	s.handlers[op] = func(args []any) (bind.Result, error) {
		labels, rows := fn(args)
		return bind.Tabular(s.track(bind.NewStaticRows(labels, rows...))), nil
	}
	return s
}

// Cursor answers op with a prepared cursor, e.g. one that fails while reading.
func (s *Source) Cursor(op string, fn func(args []any) *bind.StaticRows) *Source {
	s.handlers[op] = func(args []any) (bind.Result, error) {
		return bind.Tabular(s.track(fn(args))), nil
	}
	return s
}

// Value answers op with a scalar.
func (s *Source) Value(op string, v any) *Source {
	return s.ValueFunc(op, func([]any) any { return v })
}

// ValueFunc answers op with a scalar computed from the arguments.
func (s *Source) ValueFunc(op string, fn func(args []any) any) *Source {
	s.handlers[op] = func(args []any) (bind.Result, error) {
		return bind.Scalar(fn(args)), nil
	}
	return s
}

// Fail makes op return err.
func (s *Source) Fail(op string, err error) *Source {
	s.handlers[op] = func([]any) (bind.Result, error) {
		return bind.Result{}, err
	}
	return s
}

// Invoke implements bind.Source.
func (s *Source) Invoke(_ context.Context, op string, args ...any) (bind.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Op: op, Args: args})
	h, ok := s.handlers[op]
	s.mu.Unlock()

	if !ok {
		return bind.Result{}, fmt.Errorf("%s: %w", op, bind.ErrUnsupportedOperation)
	}
	return h(args)
}

// Calls returns every recorded invocation in order.
func (s *Source) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded invocations of op.
func (s *Source) CallsTo(op string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Open returns the number of cursors not yet closed.
func (s *Source) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// MaxOpen returns the highest number of cursors open at the same time.
func (s *Source) MaxOpen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxOpen
}

func (s *Source) track(rows *bind.StaticRows) bind.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open++
	if s.open > s.maxOpen {
		s.maxOpen = s.open
	}
	if s.CloseError != nil {
		rows.CloseError = s.CloseError
	}
	return &trackedRows{StaticRows: rows, owner: s}
}

type trackedRows struct {
	*bind.StaticRows
	owner  *Source
	closed bool
}

func (r *trackedRows) Close() error {
	if !r.closed {
		r.closed = true
		r.owner.mu.Lock()
		r.owner.open--
		r.owner.mu.Unlock()
	}
	return r.StaticRows.Close()
}
