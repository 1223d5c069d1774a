package bind

import (
	"fmt"
	"slices"
)

// Type describes a descriptor record shape: its name, its fields in
// declaration order and an optional base type whose fields come first.
type Type struct {
	Name string

	newRecord func() any
	base      *Type
	toBase    func(rec any) any
	fields    []*Field
}

// NewType declares a concrete descriptor type whose records are *T.
func NewType[T any](name string, fields ...*Field) *Type {
	return &Type{
		Name:      name,
		newRecord: func() any { return new(T) },
		fields:    fields,
	}
}

// NewBase declares an abstract type. Its fields are bound through the
// concrete types that extend it.
func NewBase(name string, fields ...*Field) *Type {
	return &Type{Name: name, fields: fields}
}

// Extends makes t inherit base's fields. get projects a record of t onto the
// embedded base record.
func Extends[T, B any](t, base *Type, get func(*T) *B) *Type {
	t.base = base
	t.toBase = func(rec any) any { return get(rec.(*T)) }
	return t
}

// New allocates an empty record. It returns nil for abstract types.
func (t *Type) New() any {
	if t.newRecord == nil {
		return nil
	}
	return t.newRecord()
}

// Abstract reports whether the type only serves as a base.
func (t *Type) Abstract() bool {
	return t.newRecord == nil
}

// Base returns the type t extends, or nil.
func (t *Type) Base() *Type {
	return t.base
}

// Fields returns t's own fields in declaration order.
func (t *Type) Fields() []*Field {
	return slices.Clone(t.fields)
}

// AllFields returns base fields followed by t's own.
func (t *Type) AllFields() []*Field {
	var out []*Field
	for _, s := range t.slots() {
		out = append(out, s.field)
	}
	return out
}

// Field finds a field by name, searching the base chain too.
func (t *Type) Field(name string) *Field {
	for _, s := range t.slots() {
		if s.field.Name == name {
			return s.field
		}
	}
	return nil
}

// Children returns the types reachable through t's collection fields.
func (t *Type) Children() []*Type {
	var out []*Type
	for _, f := range t.AllFields() {
		if f.Child != nil && !slices.Contains(out, f.Child) {
			out = append(out, f.Child)
		}
	}
	return out
}

func (t *Type) String() string {
	return t.Name
}

// slot is a field together with the projection from a concrete record onto
// the record that declares the field.
type slot struct {
	owner   *Type
	field   *Field
	project func(rec any) any
}

func (t *Type) slots() []slot {
	var out []slot
	if t.base != nil {
		toBase := t.toBase
		for _, s := range t.base.slots() {
			inner := s.project
			out = append(out, slot{
				owner:   s.owner,
				field:   s.field,
				project: func(rec any) any { return inner(toBase(rec)) },
			})
		}
	}
	for _, f := range t.fields {
		out = append(out, slot{owner: t, field: f, project: identity})
	}
	return out
}

func identity(rec any) any { return rec }

// Field is one declared member of a descriptor type.
//
// A column field has a Label and no Call. A derived field has a Call and is
// populated by invoking its operation: a Child type means a tabular result, a
// fact constructor means scalar results wrapped with their arguments, and
// neither means a scalar assigned to the field. A field with a Child but no
// Call is a collection filled by the caller.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	Call  *Call
	Child *Type

	set  func(rec, value any) bool
	add  func(rec, item any)
	each func(rec any, fn func(item any))
	fact func(args []any, value bool) any
}

// Derived reports whether the field is populated by an operation.
func (f *Field) Derived() bool {
	return f.Call != nil
}

// Column reports whether the field is bound from a row label.
func (f *Field) Column() bool {
	return f.Call == nil && f.Label != ""
}

// From turns a value field into a derived scalar field fed by call.
func (f *Field) From(call Call) *Field {
	f.Label = ""
	f.Call = &call
	return f
}

// Each calls fn for every item of a collection field on rec.
func (f *Field) Each(rec any, fn func(item any)) {
	if f.each != nil {
		f.each(rec, fn)
	}
}

func (f *Field) String() string {
	return f.Name
}

func valueField[T, V any](name, label string, kind Kind, ref func(*T) *V) *Field {
	return &Field{
		Name:  name,
		Label: label,
		Kind:  kind,
		set: func(rec, v any) bool {
			val, ok := v.(V)
			if !ok {
				return false
			}
			*ref(rec.(*T)) = val
			return true
		},
	}
}

// String declares a non-nullable string column.
func String[T any](name, label string, ref func(*T) *string) *Field {
	return valueField(name, label, KindString, ref)
}

// NullString declares a nullable string column.
func NullString[T any](name, label string, ref func(*T) **string) *Field {
	return valueField(name, label, KindNullString, ref)
}

// Int16 declares a non-nullable int16 column.
func Int16[T any](name, label string, ref func(*T) *int16) *Field {
	return valueField(name, label, KindInt16, ref)
}

// NullInt16 declares a nullable int16 column.
func NullInt16[T any](name, label string, ref func(*T) **int16) *Field {
	return valueField(name, label, KindNullInt16, ref)
}

// Int32 declares a non-nullable int32 column.
func Int32[T any](name, label string, ref func(*T) *int32) *Field {
	return valueField(name, label, KindInt32, ref)
}

// NullInt32 declares a nullable int32 column.
func NullInt32[T any](name, label string, ref func(*T) **int32) *Field {
	return valueField(name, label, KindNullInt32, ref)
}

// Int64 declares a non-nullable int64 column.
func Int64[T any](name, label string, ref func(*T) *int64) *Field {
	return valueField(name, label, KindInt64, ref)
}

// NullInt64 declares a nullable int64 column.
func NullInt64[T any](name, label string, ref func(*T) **int64) *Field {
	return valueField(name, label, KindNullInt64, ref)
}

// Bool declares a non-nullable bool column.
func Bool[T any](name, label string, ref func(*T) *bool) *Field {
	return valueField(name, label, KindBool, ref)
}

// NullBool declares a nullable bool column.
func NullBool[T any](name, label string, ref func(*T) **bool) *Field {
	return valueField(name, label, KindNullBool, ref)
}

// Rows declares a derived collection bound from a tabular operation.
func Rows[T, C any](name string, child *Type, ref func(*T) *[]*C, call Call) *Field {
	f := Children(name, child, ref)
	f.Call = &call
	return f
}

// Children declares a collection of child records that is filled by the
// caller rather than by an operation.
func Children[T, C any](name string, child *Type, ref func(*T) *[]*C) *Field {
	return &Field{
		Name:  name,
		Child: child,
		add: func(rec, item any) {
			p := ref(rec.(*T))
			*p = append(*p, item.(*C))
		},
		each: func(rec any, fn func(any)) {
			for _, c := range *ref(rec.(*T)) {
				fn(c)
			}
		},
	}
}

// Facts declares a derived collection of boolean scalar results. Each result
// is coerced to a bool and wrapped by wrap together with the arguments that
// produced it.
func Facts[T, F any](name string, ref func(*T) *[]F, wrap func(args []any, value bool) F, call Call) *Field {
	return &Field{
		Name: name,
		Call: &call,
		add: func(rec, item any) {
			p := ref(rec.(*T))
			*p = append(*p, item.(F))
		},
		each: func(rec any, fn func(any)) {
			for _, f := range *ref(rec.(*T)) {
				fn(f)
			}
		},
		fact: func(args []any, value bool) any { return wrap(args, value) },
	}
}

// Call names a source operation, its parameter kinds and one or more
// argument templates. Each template is one invocation attempt.
type Call struct {
	Operation string
	Params    []Kind
	Args      [][]Arg
}

// Invoke declares a call to op taking params.
func Invoke(op string, params ...Kind) Call {
	return Call{Operation: op, Params: params}
}

// With appends an argument template.
func (c Call) With(args ...Arg) Call {
	c.Args = append(slices.Clone(c.Args), args)
	return c
}

// Templates returns the argument templates. A call without parameters has a
// single empty template.
func (c Call) Templates() [][]Arg {
	if len(c.Args) == 0 {
		return [][]Arg{nil}
	}
	return c.Args
}

func (c Call) String() string {
	return fmt.Sprintf("%s/%d", c.Operation, len(c.Params))
}
