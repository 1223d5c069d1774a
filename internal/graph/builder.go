package graph

import (
	"fmt"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Builder constructs a type graph from a root descriptor type.
type Builder struct {
	root *bind.Type
}

// NewBuilder creates a builder for the types reachable from root.
func NewBuilder(root *bind.Type) *Builder {
	return &Builder{root: root}
}

// Build walks base types and collection fields from the root and validates
// the result.
func (b *Builder) Build() (*Graph, error) {
	if b.root == nil {
		return nil, fmt.Errorf("root descriptor type is nil")
	}
	if b.root.Abstract() {
		return nil, fmt.Errorf("root descriptor type %q is abstract", b.root.Name)
	}

	g := NewGraph(b.root.Name)
	if err := b.visit(g, b.root, make(map[string]*bind.Type)); err != nil {
		return nil, fmt.Errorf("failed to walk descriptor types: %w", err)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph validation failed: %w", err)
	}
	return g, nil
}

func (b *Builder) visit(g *Graph, t *bind.Type, seen map[string]*bind.Type) error {
	if prev, ok := seen[t.Name]; ok {
		if prev != t {
			return fmt.Errorf("duplicate descriptor type name %q", t.Name)
		}
		return nil
	}
	seen[t.Name] = t

	if t != b.root {
		g.AddNode(t.Name, &Node{Abstract: t.Abstract()})
	}

	if base := t.Base(); base != nil {
		if err := b.visit(g, base, seen); err != nil {
			return err
		}
		g.AddEdgeWithMeta(base.Name, t.Name, EdgeMeta{Kind: EdgeBase})
	}

	for _, f := range t.AllFields() {
		if f.Child == nil {
			continue
		}
		meta := EdgeMeta{Kind: EdgeCollection, Field: f.Name}
		if f.Call != nil {
			meta.Operation = f.Call.Operation
		}
		g.AddEdgeWithMeta(t.Name, f.Child.Name, meta)
		if err := b.visit(g, f.Child, seen); err != nil {
			return err
		}
	}
	return nil
}

// BuildFromRoot is a convenience function that builds the graph of root.
func BuildFromRoot(root *bind.Type) (*Graph, error) {
	return NewBuilder(root).Build()
}
