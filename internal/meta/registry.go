package meta

import (
	"strings"
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/graph"
)

// Descriptors returns every registered descriptor type, bases included, in
// the order the type graph visits them.
func Descriptors() []*bind.Type {
	g, err := TypeGraph()
	if err != nil {
		return nil
	}
	byName := descriptorsByName()
	out := make([]*bind.Type, 0, g.NodeCount())
	for _, name := range g.AllNodes() {
		out = append(out, byName[name])
	}
	return out
}

// Lookup returns the descriptor type registered under name, or nil.
func Lookup(name string) *bind.Type {
	return descriptorsByName()[name]
}

// KnownPath reports whether a suppression path names a field of a registered
// type.
func KnownPath(path string) bool {
	typeName, fieldName, ok := strings.Cut(path, "/")
	if !ok {
		return false
	}
	t := Lookup(typeName)
	return t != nil && t.Field(fieldName) != nil
}

// OperationPaths maps every source operation a descriptor field invokes to
// the type/field paths invoking it, in type graph order.
func OperationPaths() *orderedmap.OrderedMap[string, []string] {
	ops := orderedmap.NewOrderedMap[string, []string]()
	for _, t := range Descriptors() {
		if t.Abstract() {
			continue
		}
		for _, f := range t.AllFields() {
			if f.Call == nil {
				continue
			}
			paths, _ := ops.Get(f.Call.Operation)
			ops.Set(f.Call.Operation, append(paths, bind.Path(t.Name, f.Name)))
		}
	}
	return ops
}

var (
	graphOnce sync.Once
	typeGraph *graph.Graph
	graphErr  error
)

// TypeGraph returns the dependency graph of the descriptor types reachable
// from MetadataDescriptor. It is built once.
func TypeGraph() (*graph.Graph, error) {
	graphOnce.Do(func() {
		typeGraph, graphErr = graph.BuildFromRoot(MetadataDescriptor)
	})
	return typeGraph, graphErr
}

var (
	namesOnce sync.Once
	names     map[string]*bind.Type
)

func descriptorsByName() map[string]*bind.Type {
	namesOnce.Do(func() {
		names = make(map[string]*bind.Type)
		var visit func(t *bind.Type)
		visit = func(t *bind.Type) {
			if _, ok := names[t.Name]; ok {
				return
			}
			names[t.Name] = t
			if b := t.Base(); b != nil {
				visit(b)
			}
			for _, c := range t.Children() {
				visit(c)
			}
		}
		visit(MetadataDescriptor)
	})
	return names
}
