package bind

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/dbsmedya/dbmeta/internal/types"
)

// CoercionError describes a raw value that could not be converted cleanly to
// a field kind. It is a warning: Coerce still returns its best value.
type CoercionError struct {
	Kind   Kind
	Raw    any
	Reason string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %v (%T) to %s: %s", e.Raw, e.Raw, e.Kind, e.Reason)
}

// Coerce converts a raw source value to the Go type of kind.
//
// Values already of the target type pass through. Nullable kinds yield a
// pointer, nil for a nil raw. Numbers into a string kind are formatted.
// Numbers convert with Go's truncating casts, a number into a bool is true
// when nonzero, and textual numbers or booleans are parsed. A nil raw into a non-nullable kind yields the zero value and a
// warning. Anything else is returned unchanged together with a warning.
func Coerce(kind Kind, raw any) (any, error) {
	raw = normalizeRaw(kind, raw)
	if assignable(kind, raw) {
		return raw, nil
	}
	if raw == nil {
		if kind.Nullable() {
			return nullOf(kind), nil
		}
		return zeroOf(kind), &CoercionError{Kind: kind, Raw: raw, Reason: "null for non-nullable field"}
	}

	plain := kind.Plain()
	var value any
	switch {
	case plain == KindString:
		str, err := toString(raw)
		if err != nil {
			return raw, &CoercionError{Kind: kind, Raw: raw, Reason: err.Error()}
		}
		value = str
	case plain == KindBool:
		b, err := toBool(raw)
		if err != nil {
			return raw, &CoercionError{Kind: kind, Raw: raw, Reason: err.Error()}
		}
		value = b
	case kind.numeric():
		n, err := toInt64(raw)
		if err != nil {
			return raw, &CoercionError{Kind: kind, Raw: raw, Reason: err.Error()}
		}
		value = narrow(plain, n)
	default:
		return raw, &CoercionError{Kind: kind, Raw: raw, Reason: "unsupported kind"}
	}

	if kind.Nullable() {
		return pointerTo(value), nil
	}
	return value, nil
}

// normalizeRaw unwraps driver representations: byte slices become strings and
// pointer values are dereferenced.
func normalizeRaw(kind Kind, raw any) any {
	switch v := raw.(type) {
	case []byte:
		return string(v)
	case sql.RawBytes:
		return string(v)
	case *string:
		if kind == KindNullString {
			return v
		}
		if v == nil {
			return nil
		}
		return *v
	case *int16:
		if kind == KindNullInt16 {
			return v
		}
		if v == nil {
			return nil
		}
		return *v
	case *int32:
		if kind == KindNullInt32 {
			return v
		}
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if kind == KindNullInt64 {
			return v
		}
		if v == nil {
			return nil
		}
		return *v
	case *bool:
		if kind == KindNullBool {
			return v
		}
		if v == nil {
			return nil
		}
		return *v
	}
	return raw
}

func assignable(kind Kind, raw any) bool {
	switch kind {
	case KindAny:
		return true
	case KindString:
		_, ok := raw.(string)
		return ok
	case KindNullString:
		_, ok := raw.(*string)
		return ok
	case KindInt16:
		_, ok := raw.(int16)
		return ok
	case KindNullInt16:
		_, ok := raw.(*int16)
		return ok
	case KindInt32:
		_, ok := raw.(int32)
		return ok
	case KindNullInt32:
		_, ok := raw.(*int32)
		return ok
	case KindInt64:
		_, ok := raw.(int64)
		return ok
	case KindNullInt64:
		_, ok := raw.(*int64)
		return ok
	case KindBool:
		_, ok := raw.(bool)
		return ok
	case KindNullBool:
		_, ok := raw.(*bool)
		return ok
	}
	return false
}

func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return "", fmt.Errorf("not textual")
	}
	if _, ok := types.ToFloat64(raw); ok {
		return cast.ToStringE(raw)
	}
	return "", fmt.Errorf("not textual")
}

func toInt64(raw any) (int64, error) {
	if n, ok := types.ToInt64(raw); ok {
		return n, nil
	}
	switch v := raw.(type) {
	case string:
		return cast.ToInt64E(strings.TrimSpace(v))
	case bool:
		return 0, fmt.Errorf("boolean is not numeric")
	}
	return 0, fmt.Errorf("not numeric")
}

func toBool(raw any) (bool, error) {
	if f, ok := types.ToFloat64(raw); ok {
		return f != 0, nil
	}
	if s, ok := raw.(string); ok {
		return cast.ToBoolE(strings.TrimSpace(s))
	}
	return false, fmt.Errorf("not boolean")
}

func narrow(kind Kind, n int64) any {
	switch kind {
	case KindInt16:
		return int16(n)
	case KindInt32:
		return int32(n)
	default:
		return n
	}
}

func pointerTo(v any) any {
	switch x := v.(type) {
	case string:
		return &x
	case int16:
		return &x
	case int32:
		return &x
	case int64:
		return &x
	case bool:
		return &x
	}
	return v
}

func nullOf(kind Kind) any {
	switch kind {
	case KindNullString:
		return (*string)(nil)
	case KindNullInt16:
		return (*int16)(nil)
	case KindNullInt32:
		return (*int32)(nil)
	case KindNullInt64:
		return (*int64)(nil)
	case KindNullBool:
		return (*bool)(nil)
	}
	return nil
}

func zeroOf(kind Kind) any {
	switch kind.Plain() {
	case KindString:
		return ""
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindInt64:
		return int64(0)
	case KindBool:
		return false
	}
	return nil
}
