package graph

import (
	"reflect"
	"testing"
)

func TestNewGraph(t *testing.T) {
	g := NewGraph("metadata")

	if g.Root != "metadata" {
		t.Errorf("Expected root metadata, got %q", g.Root)
	}
	node := g.GetNode("metadata")
	if node == nil || !node.IsRoot {
		t.Fatalf("Expected root node, got %+v", node)
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 0 {
		t.Errorf("Expected 1 node and 0 edges, got %d and %d", g.NodeCount(), g.EdgeCount())
	}
}

func TestAddEdge_Deduplicates(t *testing.T) {
	g := NewGraph("schema")
	g.AddNode("crossReference", nil)
	g.AddEdge("schema", "crossReference")
	g.AddEdge("schema", "crossReference")

	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
	if len(g.GetParents("crossReference")) != 1 || g.OutDegree("schema") != 1 {
		t.Errorf("Unexpected degrees: in=%d out=%d", len(g.GetParents("crossReference")), g.OutDegree("schema"))
	}
}

func TestAddEdgeWithMeta_FirstWins(t *testing.T) {
	g := NewGraph("table")
	g.AddNode("column", nil)
	g.AddEdgeWithMeta("table", "column", EdgeMeta{Kind: EdgeCollection, Field: "columns", Operation: "getColumns"})
	g.AddEdgeWithMeta("table", "column", EdgeMeta{Kind: EdgeCollection, Field: "other"})

	meta := g.GetEdgeMeta("table", "column")
	if meta == nil {
		t.Fatal("Expected edge metadata")
	}
	if meta.Field != "columns" || meta.Operation != "getColumns" {
		t.Errorf("Expected first metadata to win, got %+v", meta)
	}
	if g.GetEdgeMeta("column", "table") != nil {
		t.Error("Expected no metadata for missing edge")
	}
}

func TestAllNodes_InsertionOrder(t *testing.T) {
	g := NewGraph("metadata")
	for _, n := range []string{"catalog", "schema", "table", "column"} {
		g.AddNode(n, nil)
	}
	g.AddEdge("metadata", "catalog")
	g.AddEdge("catalog", "schema")
	g.AddEdge("schema", "table")
	g.AddEdge("table", "column")

	want := []string{"metadata", "catalog", "schema", "table", "column"}
	if got := g.AllNodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllNodes() = %v, want %v", got, want)
	}
	if got := g.LeafNodes(); !reflect.DeepEqual(got, []string{"column"}) {
		t.Errorf("LeafNodes() = %v, want [column]", got)
	}
	edges := g.AllEdges()
	if len(edges) != 4 || edges[0] != (Edge{From: "metadata", To: "catalog"}) {
		t.Errorf("Unexpected edges %v", edges)
	}
}

func TestEdgeKindString(t *testing.T) {
	if EdgeBase.String() != "base" || EdgeCollection.String() != "collection" {
		t.Errorf("Unexpected edge kind names %q %q", EdgeBase, EdgeCollection)
	}
}
