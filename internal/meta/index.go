package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Index resolves parent references back to records. Build it once the graph
// is complete; later changes to the graph are not seen.
type Index struct {
	records map[bind.Ref]any
}

// NewIndex indexes every keyed record reachable from m. When two records of
// a type share a key the first one in traversal order wins.
func NewIndex(m *Metadata) *Index {
	idx := &Index{records: make(map[bind.Ref]any)}
	if m == nil {
		return idx
	}
	bind.Walk(MetadataDescriptor, m, func(t *bind.Type, rec any, _ *bind.Type, _ any) {
		if _, ok := rec.(bind.Keyed); !ok {
			return
		}
		ref := bind.RefOf(t, rec)
		if _, exists := idx.records[ref]; !exists {
			idx.records[ref] = rec
		}
	})
	return idx
}

// Get returns the record behind ref, or nil.
func (i *Index) Get(ref bind.Ref) any {
	return i.records[ref]
}

// Len returns the number of indexed records.
func (i *Index) Len() int {
	return len(i.records)
}

// ParentOf returns the record owning rec, or nil for the root and for
// records whose parent is not indexed.
func (i *Index) ParentOf(rec any) any {
	p, ok := rec.(interface{ Parent() bind.Ref })
	if !ok || p.Parent().IsZero() {
		return nil
	}
	return i.Get(p.Parent())
}

// TableOf returns the table owning a per-table record such as a column.
func (i *Index) TableOf(rec any) *Table {
	t, _ := i.ParentOf(rec).(*Table)
	return t
}
