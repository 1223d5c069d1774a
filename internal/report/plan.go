package report

import (
	"fmt"

	"github.com/gookit/color"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/graph"
	"github.com/dbsmedya/dbmeta/internal/meta"
)

// Plan prints the descriptor type tree reachable from the graph root, the
// binding order and the suppressed paths. Suppressed collections are marked
// and not expanded.
func (p *Printer) Plan(g *graph.Graph, sup *bind.Suppressions) error {
	order, err := g.BindingOrder()
	if err != nil {
		return fmt.Errorf("failed to order descriptor types: %w", err)
	}

	tree := []string{g.Root}
	tree = p.typeTree(g, g.Root, "", sup, map[string]bool{g.Root: true}, tree)

	abstract := 0
	for _, name := range g.AllNodes() {
		if g.GetNode(name).Abstract {
			abstract++
		}
	}
	unknown := 0
	for _, path := range sup.Paths() {
		if !meta.KnownPath(path) {
			unknown++
		}
	}
	collections := 0
	for _, e := range g.AllEdges() {
		if m := g.GetEdgeMeta(e.From, e.To); m != nil && m.Kind == graph.EdgeCollection {
			collections++
		}
	}
	summary := []string{
		"[ Plan Summary ]",
		"----------------",
		fmt.Sprintf("Types:        %d (%d abstract)", g.NodeCount(), abstract),
		fmt.Sprintf("Edges:        %d (%d collections)", g.EdgeCount(), collections),
		fmt.Sprintf("Leaf types:   %d", len(g.LeafNodes())),
		fmt.Sprintf("Bound types:  %d", len(order)),
		fmt.Sprintf("Suppressed:   %d paths", sup.Len()),
	}
	if unknown > 0 {
		summary = append(summary, p.paint(color.New(color.FgRed), fmt.Sprintf("Unknown:      %d paths", unknown)))
	}

	p.Header("Type Tree")
	p.println()
	p.sideBySide(tree, summary, 4)

	p.println()
	p.Section("Binding Order (parents first)")
	for i, name := range order {
		num := fmt.Sprintf("[%d]", i+1)
		switch base := baseOf(g, name); {
		case g.GetNode(name).IsRoot:
			p.printf("  %s %s (root)\n", num, name)
		case base != "":
			p.printf("  %s %s | extends %s\n", num, name, base)
		default:
			p.printf("  %s %s\n", num, name)
		}
	}

	p.println()
	p.Section("Suppressed Paths")
	if sup.Len() == 0 {
		p.println("  none")
		return nil
	}
	for _, path := range sup.Paths() {
		if meta.KnownPath(path) {
			p.printf("  • %s\n", path)
			continue
		}
		p.printf("  • %s %s\n", path, p.paint(color.New(color.FgRed), "(unknown path)"))
	}
	return nil
}

// typeTree appends the collection subtree of name to lines.
func (p *Printer) typeTree(g *graph.Graph, name, indent string, sup *bind.Suppressions, onPath map[string]bool, lines []string) []string {
	var edges []string
	for _, child := range g.GetChildren(name) {
		if m := g.GetEdgeMeta(name, child); m != nil && m.Kind == graph.EdgeCollection {
			edges = append(edges, child)
		}
	}

	for i, child := range edges {
		m := g.GetEdgeMeta(name, child)
		branch, next := "├── ", "│   "
		if i == len(edges)-1 {
			branch, next = "└── ", "    "
		}

		op := m.Operation
		if op == "" {
			op = "filled after traversal"
		}
		line := fmt.Sprintf("%s%s%s: %s (%s)", indent, branch, m.Field, child, op)

		path := bind.Path(name, m.Field)
		if sup.IsSuppressed(path) {
			lines = append(lines, line+" "+p.paint(color.New(color.FgYellow), "[suppressed]"))
			continue
		}
		lines = append(lines, line)
		if onPath[child] || g.OutDegree(child) == 0 {
			continue
		}
		onPath[child] = true
		lines = p.typeTree(g, child, indent+next, sup, onPath, lines)
		delete(onPath, child)
	}
	return lines
}

// baseOf returns the type name extends, or "".
func baseOf(g *graph.Graph, name string) string {
	for _, parent := range g.GetParents(name) {
		if m := g.GetEdgeMeta(parent, name); m != nil && m.Kind == graph.EdgeBase {
			return parent
		}
	}
	return ""
}
