package bind

// Visitor is called for every record reached by Walk. parent is nil for the
// record Walk started at.
type Visitor func(t *Type, rec any, parentType *Type, parent any)

// Walk visits rec and, depth-first in field order, every record held in its
// collection fields.
func Walk(t *Type, rec any, fn Visitor) {
	walk(t, rec, nil, nil, fn)
}

func walk(t *Type, rec any, parentType *Type, parent any, fn Visitor) {
	fn(t, rec, parentType, parent)
	for _, sl := range t.slots() {
		f := sl.field
		if f.Child == nil {
			continue
		}
		f.Each(sl.project(rec), func(item any) {
			walk(f.Child, item, t, rec, fn)
		})
	}
}
