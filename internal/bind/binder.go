package bind

import (
	"context"
	"errors"
)

// Bind populates rec, a record of t, from row and then expands its derived
// fields.
func (s *Session) Bind(ctx context.Context, t *Type, row Row, rec any) error {
	if err := s.BindFields(t, row, rec); err != nil {
		return err
	}
	if err := s.Expand(ctx, t, rec); err != nil {
		return err
	}
	s.stats.RecordsBound++
	return nil
}

// BindFields assigns every non-suppressed column field of t from row. Base
// fields are bound first. Missing, ambiguous and unassignable values are
// reported and leave the field at its zero value; row labels that match no
// declared field are reported as unknown columns.
func (s *Session) BindFields(t *Type, row Row, rec any) error {
	known := make(map[string]bool)

	for _, sl := range t.slots() {
		f := sl.field
		if !f.Column() {
			continue
		}
		known[fold(f.Label)] = true

		path := Path(t.Name, f.Name)
		if s.Suppressed(path) {
			continue
		}

		raw, found, isAmbiguous := row.Lookup(f.Label)
		switch {
		case isAmbiguous:
			if err := s.report(Diagnostic{Code: CodeAmbiguousColumn, Path: path, Label: f.Label}); err != nil {
				return err
			}
			continue
		case !found:
			if err := s.report(Diagnostic{Code: CodeUnknownField, Path: path, Label: f.Label}); err != nil {
				return err
			}
			continue
		}

		if err := s.assign(f, path, sl.project(rec), raw); err != nil {
			return err
		}
	}

	reported := make(map[string]bool)
	for _, label := range row.Labels() {
		key := fold(label)
		if known[key] || reported[key] {
			continue
		}
		reported[key] = true
		if err := s.report(Diagnostic{Code: CodeUnknownColumn, Path: Path(t.Name, label), Label: label}); err != nil {
			return err
		}
	}

	return nil
}

// assign coerces raw to f's kind and stores it in target.
func (s *Session) assign(f *Field, path string, target, raw any) error {
	v, warn := Coerce(f.Kind, raw)
	if f.set(target, v) {
		if warn != nil {
			return s.report(Diagnostic{Code: CodeCoercionMismatch, Path: path, Label: f.Label, Err: warn})
		}
		return nil
	}
	if warn == nil {
		warn = &CoercionError{Kind: f.Kind, Raw: raw, Reason: "not assignable"}
	}
	return s.report(Diagnostic{Code: CodeCoercionMismatch, Path: path, Label: f.Label, Err: warn})
}

// Request describes a tabular query issued outside of a declared field, such
// as the cross-reference pass.
type Request struct {
	Path      string
	Type      *Type
	Operation string
	Args      []any
	// Parent receives the bound records as children.
	ParentType *Type
	Parent     any
}

// Query invokes a tabular operation with resolved arguments and returns the
// bound and expanded records. Failures become diagnostics and yield no
// records; only fatal and strict errors are returned.
func (s *Session) Query(ctx context.Context, req Request) ([]any, error) {
	res, err := s.invoke(ctx, req.Operation, req.Args)
	if err != nil {
		return nil, s.reportInvokeError(req.Path, req.Operation, req.Args, err)
	}
	if res.Rows == nil {
		return nil, s.report(Diagnostic{
			Code: CodeOperationFailure, Severity: SeveritySevere, Path: req.Path,
			Operation: req.Operation, Args: req.Args, Err: errors.New("expected a tabular result"),
		})
	}
	return s.collect(ctx, req.Type, res.Rows, req.Path, req.Operation, req.Args, req.ParentType, req.Parent)
}
