package bind

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Path returns the suppression path of a field: "<type>/<field>".
func Path(typeName, fieldName string) string {
	return typeName + "/" + fieldName
}

// Suppressions is the set of suppressed field paths. A suppressed field is
// never bound and never triggers an invocation. The zero value is not usable;
// a nil *Suppressions suppresses nothing.
type Suppressions struct {
	paths *orderedmap.OrderedMap[string, struct{}]
}

// NewSuppressions returns a registry holding paths.
func NewSuppressions(paths ...string) *Suppressions {
	s := &Suppressions{paths: orderedmap.NewOrderedMap[string, struct{}]()}
	s.Suppress(paths...)
	return s
}

// Suppress adds paths. Adding a path twice has no effect.
func (s *Suppressions) Suppress(paths ...string) {
	for _, p := range paths {
		s.paths.Set(p, struct{}{})
	}
}

// IsSuppressed reports whether path was suppressed.
func (s *Suppressions) IsSuppressed(path string) bool {
	if s == nil {
		return false
	}
	_, ok := s.paths.Get(path)
	return ok
}

// Paths returns the suppressed paths in insertion order.
func (s *Suppressions) Paths() []string {
	if s == nil {
		return nil
	}
	return s.paths.Keys()
}

// Len returns the number of suppressed paths.
func (s *Suppressions) Len() int {
	if s == nil {
		return 0
	}
	return s.paths.Len()
}
