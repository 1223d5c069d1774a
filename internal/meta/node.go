// Package meta declares the descriptor records of a database's metadata and
// registers how each one is bound.
package meta

import (
	"strings"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

// node carries the parent reference of a non-root record.
type node struct {
	parent bind.Ref
}

// SetParent implements bind.Child.
func (n *node) SetParent(ref bind.Ref) {
	n.parent = ref
}

// Parent returns the reference to the record that owns this one.
func (n *node) Parent() bind.Ref {
	return n.parent
}

// Deref returns the string behind p, or nil. It turns nullable record fields
// into operation arguments.
func Deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func key(parts ...string) string {
	return strings.Join(parts, ".")
}
