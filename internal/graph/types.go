// Package graph models how descriptor types depend on one another so a
// binding plan can be ordered and checked before any source is touched.
package graph

// EdgeKind tells why one descriptor type depends on another.
type EdgeKind int

const (
	// EdgeCollection links a type to the child type one of its collection
	// fields holds.
	EdgeCollection EdgeKind = iota
	// EdgeBase links a base type to a type that extends it.
	EdgeBase
)

func (k EdgeKind) String() string {
	if k == EdgeBase {
		return "base"
	}
	return "collection"
}

// Node represents a descriptor type in the graph.
type Node struct {
	Name     string // Descriptor type name
	Abstract bool   // True for base types that are never instantiated
	IsRoot   bool   // True for the type traversal starts at
}

// Edge represents a dependency between descriptor types.
type Edge struct {
	From string
	To   string
}

// EdgeMeta describes the field behind an edge.
type EdgeMeta struct {
	Kind      EdgeKind
	Field     string // Collection field name, empty for base edges
	Operation string // Source operation filling the field, empty for caller-filled collections
}

// Graph is the descriptor type dependency structure reachable from a root.
// Nodes and edges keep insertion order so every listing is deterministic.
type Graph struct {
	Nodes        map[string]*Node
	Children     map[string][]string
	Parents      map[string][]string
	Root         string
	order        []string
	edgeMetadata map[Edge]*EdgeMeta
}

// NewGraph creates a graph holding only the root node.
func NewGraph(root string) *Graph {
	g := &Graph{
		Nodes:        make(map[string]*Node),
		Children:     make(map[string][]string),
		Parents:      make(map[string][]string),
		Root:         root,
		edgeMetadata: make(map[Edge]*EdgeMeta),
	}
	g.AddNode(root, &Node{IsRoot: true})
	return g
}

// AddNode adds or replaces a node. A nil node gets default values.
func (g *Graph) AddNode(name string, node *Node) {
	if node == nil {
		node = &Node{}
	}
	node.Name = name
	if _, exists := g.Nodes[name]; !exists {
		g.order = append(g.order, name)
	}
	g.Nodes[name] = node
}

// AddEdge adds a parent -> child relationship. Adding an existing edge is a
// no-op.
func (g *Graph) AddEdge(parent, child string) {
	if g.HasEdge(parent, child) {
		return
	}
	g.Children[parent] = append(g.Children[parent], child)
	g.Parents[child] = append(g.Parents[child], parent)
}

// AddEdgeWithMeta adds an edge and records the field behind it. The first
// metadata recorded for an edge wins.
func (g *Graph) AddEdgeWithMeta(parent, child string, meta EdgeMeta) {
	g.AddEdge(parent, child)
	edge := Edge{From: parent, To: child}
	if _, exists := g.edgeMetadata[edge]; !exists {
		g.edgeMetadata[edge] = &meta
	}
}

// HasEdge reports whether parent -> child exists.
func (g *Graph) HasEdge(parent, child string) bool {
	for _, c := range g.Children[parent] {
		if c == child {
			return true
		}
	}
	return false
}

// GetChildren returns the direct dependents of a type.
func (g *Graph) GetChildren(parent string) []string {
	return g.Children[parent]
}

// GetParents returns the types a type depends on.
func (g *Graph) GetParents(child string) []string {
	return g.Parents[child]
}

// GetNode returns the node for a type name, or nil.
func (g *Graph) GetNode(name string) *Node {
	return g.Nodes[name]
}

// GetEdgeMeta returns the metadata of an edge, or nil.
func (g *Graph) GetEdgeMeta(parent, child string) *EdgeMeta {
	return g.edgeMetadata[Edge{From: parent, To: child}]
}

// HasNode reports whether the graph contains a type.
func (g *Graph) HasNode(name string) bool {
	_, exists := g.Nodes[name]
	return exists
}

// NodeCount returns the number of types.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, children := range g.Children {
		count += len(children)
	}
	return count
}

// AllNodes returns type names in insertion order.
func (g *Graph) AllNodes() []string {
	return append([]string(nil), g.order...)
}

// AllEdges returns every edge, grouped by parent in insertion order.
func (g *Graph) AllEdges() []Edge {
	var edges []Edge
	for _, parent := range g.order {
		for _, child := range g.Children[parent] {
			edges = append(edges, Edge{From: parent, To: child})
		}
	}
	return edges
}

// LeafNodes returns types nothing depends on.
func (g *Graph) LeafNodes() []string {
	var leaves []string
	for _, name := range g.order {
		if len(g.Children[name]) == 0 {
			leaves = append(leaves, name)
		}
	}
	return leaves
}

// OutDegree returns the number of outgoing edges of a type.
func (g *Graph) OutDegree(name string) int {
	return len(g.Children[name])
}
