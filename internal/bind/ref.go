package bind

// Ref identifies a record by type name and key. Children hold a Ref to their
// parent instead of a pointer so the record graph stays a tree.
type Ref struct {
	Type string `yaml:"type" json:"type"`
	Key  string `yaml:"key" json:"key"`
}

// IsZero reports whether the ref is unset.
func (r Ref) IsZero() bool {
	return r.Type == "" && r.Key == ""
}

func (r Ref) String() string {
	if r.Key == "" {
		return r.Type
	}
	return r.Type + ":" + r.Key
}

// Keyed records expose a key unique among records of their type.
type Keyed interface {
	Key() string
}

// Child records accept a reference to their parent.
type Child interface {
	SetParent(Ref)
}

// RefOf builds the Ref of rec as a record of t.
func RefOf(t *Type, rec any) Ref {
	ref := Ref{Type: t.Name}
	if k, ok := rec.(Keyed); ok {
		ref.Key = k.Key()
	}
	return ref
}
