package bind

import (
	"context"
	"errors"
	"fmt"
)

// Expand invokes every non-suppressed derived field of t on rec, once per
// argument template, depth-first.
func (s *Session) Expand(ctx context.Context, t *Type, rec any) error {
	for _, sl := range t.slots() {
		f := sl.field
		if !f.Derived() {
			continue
		}
		path := Path(t.Name, f.Name)
		if s.Suppressed(path) {
			continue
		}

		target := sl.project(rec)
		for _, tmpl := range f.Call.Templates() {
			if err := s.attempt(ctx, t, rec, f, path, target, tmpl); err != nil {
				return err
			}
		}
	}
	return nil
}

// attempt runs one argument set of a derived field. Only fatal and strict
// errors are returned; everything else is a diagnostic.
func (s *Session) attempt(ctx context.Context, t *Type, rec any, f *Field, path string, target any, tmpl []Arg) error {
	op := f.Call.Operation

	args, err := ResolveArgs(f.Call.Params, tmpl, target)
	if err != nil {
		return s.report(Diagnostic{
			Code: CodeOperationFailure, Severity: SeveritySevere, Path: path,
			Operation: op, Err: fmt.Errorf("resolve arguments: %w", err),
		})
	}

	res, err := s.invoke(ctx, op, args)
	if err != nil {
		return s.reportInvokeError(path, op, args, err)
	}

	if res.Rows != nil {
		if f.Child == nil {
			if err := res.Rows.Close(); err != nil {
				return &FatalError{Op: "close cursor of " + op, Err: err}
			}
			return s.report(Diagnostic{
				Code: CodeOperationFailure, Severity: SeveritySevere, Path: path,
				Operation: op, Args: args, Err: errors.New("unexpected tabular result"),
			})
		}
		items, err := s.collect(ctx, f.Child, res.Rows, path, op, args, t, rec)
		if err != nil {
			return err
		}
		for _, item := range items {
			f.add(target, item)
		}
		return nil
	}

	switch {
	case f.fact != nil:
		v, warn := Coerce(KindBool, res.Value)
		b, _ := v.(bool)
		f.add(target, f.fact(args, b))
		if warn != nil {
			return s.report(Diagnostic{Code: CodeCoercionMismatch, Path: path, Operation: op, Args: args, Err: warn})
		}
		return nil
	case f.set != nil:
		return s.assign(f, path, target, res.Value)
	}
	return s.report(Diagnostic{
		Code: CodeOperationFailure, Severity: SeveritySevere, Path: path,
		Operation: op, Args: args, Err: errors.New("unexpected scalar result"),
	})
}

func (s *Session) invoke(ctx context.Context, op string, args []any) (Result, error) {
	s.stats.Invocations++
	s.log.WithOperation(op).Debugw("Invoking operation", "args", args)
	return s.source.Invoke(ctx, op, args...)
}

func (s *Session) reportInvokeError(path, op string, args []any, err error) error {
	d := Diagnostic{Code: CodeOperationFailure, Severity: SeveritySevere, Path: path, Operation: op, Args: args, Err: err}
	if errors.Is(err, ErrUnsupportedOperation) {
		d.Code = CodeUnsupportedOperation
		d.Severity = SeverityWarning
	}
	return s.report(d)
}

// collect drains cur into records of t, closes it, then expands each record
// and links it to its parent. A read error discards the whole batch.
func (s *Session) collect(ctx context.Context, t *Type, cur Cursor, path, op string, args []any, parentType *Type, parent any) ([]any, error) {
	staged, readErr, err := s.drain(t, cur)
	if closeErr := cur.Close(); closeErr != nil {
		return nil, &FatalError{Op: "close cursor of " + op, Err: closeErr}
	}
	if err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, s.report(Diagnostic{
			Code: CodeOperationFailure, Severity: SeveritySevere, Path: path,
			Operation: op, Args: args, Err: readErr,
		})
	}

	var ref Ref
	if parentType != nil {
		ref = RefOf(parentType, parent)
	}
	for _, rec := range staged {
		if err := s.Expand(ctx, t, rec); err != nil {
			return nil, err
		}
		if c, ok := rec.(Child); ok && parentType != nil {
			c.SetParent(ref)
		}
	}
	s.stats.RecordsBound += int64(len(staged))
	return staged, nil
}

// drain reads all rows. readErr is a cursor failure; err is a strict abort.
func (s *Session) drain(t *Type, cur Cursor) (staged []any, readErr, err error) {
	if t.Abstract() {
		return nil, fmt.Errorf("type %s is abstract", t.Name), nil
	}
	labels, readErr := cur.Columns()
	if readErr != nil {
		return nil, readErr, nil
	}
	for cur.Next() {
		values := make([]any, len(labels))
		dest := make([]any, len(labels))
		for i := range values {
			dest[i] = &values[i]
		}
		if readErr := cur.Scan(dest...); readErr != nil {
			return nil, readErr, nil
		}
		rec := t.New()
		if err := s.BindFields(t, NewRow(labels, values), rec); err != nil {
			return nil, nil, err
		}
		staged = append(staged, rec)
	}
	if readErr := cur.Err(); readErr != nil {
		return nil, readErr, nil
	}
	return staged, nil, nil
}
