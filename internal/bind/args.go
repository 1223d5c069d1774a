package bind

import (
	"fmt"
)

type argKind int

const (
	argLiteral argKind = iota
	argNull
	argRef
)

// Arg is one position of an argument template.
type Arg struct {
	kind  argKind
	value any
	name  string
	get   func(rec any) (any, error)
}

// Literal is a constant argument.
func Literal(v any) Arg {
	return Arg{kind: argLiteral, value: v}
}

// Null is an explicit null argument.
func Null() Arg {
	return Arg{kind: argNull}
}

// Back reads an argument back from the record being expanded. name is used in
// diagnostics only.
func Back[T any](name string, get func(*T) any) Arg {
	return Arg{
		kind: argRef,
		name: name,
		get: func(rec any) (any, error) {
			r, ok := rec.(*T)
			if !ok {
				return nil, fmt.Errorf("reference %s: record is %T, want %T", name, rec, r)
			}
			return get(r), nil
		},
	}
}

func (a Arg) String() string {
	switch a.kind {
	case argNull:
		return "null"
	case argRef:
		return ":" + a.name
	default:
		return fmt.Sprintf("%v", a.value)
	}
}

// ResolveArgs computes concrete argument values for one invocation attempt.
// Values are plain (never pointers) or nil; each is coerced to its parameter
// kind.
func ResolveArgs(params []Kind, template []Arg, rec any) ([]any, error) {
	if len(template) != len(params) {
		return nil, fmt.Errorf("argument count mismatch: %d parameters, %d arguments", len(params), len(template))
	}

	args := make([]any, len(params))
	for i, a := range template {
		var raw any
		switch a.kind {
		case argNull:
			raw = nil
		case argLiteral:
			raw = a.value
		case argRef:
			v, err := a.get(rec)
			if err != nil {
				return nil, err
			}
			raw = v
		}

		v, err := resolveArg(params[i], raw)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a, err)
		}
		args[i] = v
	}
	return args, nil
}

func resolveArg(param Kind, raw any) (any, error) {
	// Dereference nullable record fields; arguments travel as plain values.
	raw = normalizeRaw(KindAny, raw)
	if raw == nil {
		if !param.Nullable() {
			return nil, fmt.Errorf("null for non-nullable %s parameter", param)
		}
		return nil, nil
	}
	v, err := Coerce(param.Plain(), raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}
