// Package bind populates descriptor records from tabular source results and
// recursively expands their derived collections by invoking further source
// operations, driven entirely by per-field declarations.
package bind

// Kind is the declared value type of a field or operation parameter.
// Nullable kinds are stored as pointers and accept a nil raw value.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNullString
	KindInt16
	KindNullInt16
	KindInt32
	KindNullInt32
	KindInt64
	KindNullInt64
	KindBool
	KindNullBool
)

var kindNames = map[Kind]string{
	KindAny:        "any",
	KindString:     "string",
	KindNullString: "*string",
	KindInt16:      "int16",
	KindNullInt16:  "*int16",
	KindInt32:      "int32",
	KindNullInt32:  "*int32",
	KindInt64:      "int64",
	KindNullInt64:  "*int64",
	KindBool:       "bool",
	KindNullBool:   "*bool",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Nullable reports whether the kind accepts a nil value.
func (k Kind) Nullable() bool {
	switch k {
	case KindAny, KindNullString, KindNullInt16, KindNullInt32, KindNullInt64, KindNullBool:
		return true
	}
	return false
}

// Plain returns the non-pointer kind underlying k.
func (k Kind) Plain() Kind {
	switch k {
	case KindNullString:
		return KindString
	case KindNullInt16:
		return KindInt16
	case KindNullInt32:
		return KindInt32
	case KindNullInt64:
		return KindInt64
	case KindNullBool:
		return KindBool
	}
	return k
}

func (k Kind) numeric() bool {
	switch k.Plain() {
	case KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}
