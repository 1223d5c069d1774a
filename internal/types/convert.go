// Package types holds small value helpers shared by the binder and the report.
package types

// ToInt64 converts a numeric value to int64.
// Supports every sized int and uint type plus float32 and float64; floats are
// truncated toward zero. The second result is false for non-numeric values.
func ToInt64(v interface{}) (int64, bool) {
	switch i := v.(type) {
	case int64:
		return i, true
	case int:
		return int64(i), true
	case int32:
		return int64(i), true
	case int16:
		return int64(i), true
	case int8:
		return int64(i), true
	case uint:
		return int64(i), true
	case uint64:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint8:
		return int64(i), true
	case float64:
		return int64(i), true
	case float32:
		return int64(i), true
	default:
		return 0, false
	}
}

// ToFloat64 converts a numeric value to float64.
func ToFloat64(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	i, ok := ToInt64(v)
	return float64(i), ok
}

// IsNumeric reports whether v holds one of the numeric types ToInt64 accepts.
func IsNumeric(v interface{}) bool {
	_, ok := ToInt64(v)
	return ok
}
