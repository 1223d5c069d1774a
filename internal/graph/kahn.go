package graph

import (
	"container/list"
	"errors"
	"fmt"
	"strings"
)

// ProcessingQueue holds types whose dependencies are all ordered.
type ProcessingQueue struct {
	queue *list.List
}

// NewProcessingQueue creates an empty queue.
func NewProcessingQueue() *ProcessingQueue {
	return &ProcessingQueue{queue: list.New()}
}

// Enqueue adds a type to the back of the queue.
func (pq *ProcessingQueue) Enqueue(node string) {
	pq.queue.PushBack(node)
}

// Dequeue removes and returns the type at the front of the queue.
func (pq *ProcessingQueue) Dequeue() (string, bool) {
	if pq.queue.Len() == 0 {
		return "", false
	}
	elem := pq.queue.Front()
	pq.queue.Remove(elem)
	return elem.Value.(string), true
}

// Len returns the number of queued types.
func (pq *ProcessingQueue) Len() int {
	return pq.queue.Len()
}

// IsEmpty reports whether the queue is empty.
func (pq *ProcessingQueue) IsEmpty() bool {
	return pq.queue.Len() == 0
}

// CalculateInDegrees returns type name -> number of incoming edges.
func (g *Graph) CalculateInDegrees() map[string]int {
	inDegree := make(map[string]int, len(g.Nodes))
	for name := range g.Nodes {
		inDegree[name] = 0
	}
	for _, children := range g.Children {
		for _, child := range children {
			inDegree[child]++
		}
	}
	return inDegree
}

// GetZeroInDegreeNodes returns, in insertion order, the types without
// dependencies.
func (g *Graph) GetZeroInDegreeNodes(inDegree map[string]int) []string {
	var nodes []string
	for _, name := range g.order {
		if inDegree[name] == 0 {
			nodes = append(nodes, name)
		}
	}
	return nodes
}

// InitializeQueue seeds a queue with the zero in-degree types.
func (g *Graph) InitializeQueue(inDegree map[string]int) *ProcessingQueue {
	pq := NewProcessingQueue()
	for _, name := range g.GetZeroInDegreeNodes(inDegree) {
		pq.Enqueue(name)
	}
	return pq
}

// kahn returns the types it could order. Anything missing is on or behind a
// cycle.
func (g *Graph) kahn() []string {
	inDegree := g.CalculateInDegrees()
	queue := g.InitializeQueue(inDegree)

	var ordered []string
	for !queue.IsEmpty() {
		node, _ := queue.Dequeue()
		ordered = append(ordered, node)
		for _, child := range g.GetChildren(node) {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue.Enqueue(child)
			}
		}
	}
	return ordered
}

// ErrCycleDetected is returned when descriptor types depend on each other in
// a cycle, so no binding order exists.
var ErrCycleDetected = errors.New("cycle detected in descriptor type graph")

// CycleInfo describes the types Kahn ordering could not place.
type CycleInfo struct {
	TotalNodes        int      // Types in the graph
	ProcessedNodes    int      // Types that were ordered
	UnprocessedNodes  []string // Types on or behind a cycle
	CycleParticipants []string // Types on a cycle, subset of UnprocessedNodes
	CyclePath         []string // One cycle, first type repeated at the end
}

// CycleError reports which descriptor types form a cycle and which are
// blocked behind it.
type CycleError struct {
	Info *CycleInfo
}

// Unwrap lets errors.Is match ErrCycleDetected.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}

func (e *CycleError) Error() string {
	msg := fmt.Sprintf("%s: %d of %d types could not be ordered", ErrCycleDetected,
		len(e.Info.UnprocessedNodes), e.Info.TotalNodes)

	if len(e.Info.CyclePath) > 0 {
		msg += fmt.Sprintf("\nCycle path: %s", strings.Join(e.Info.CyclePath, " -> "))
	}
	if len(e.Info.CycleParticipants) > 0 {
		msg += fmt.Sprintf("\nTypes in cycle: %s", strings.Join(e.Info.CycleParticipants, ", "))
	}

	onCycle := make(map[string]bool, len(e.Info.CycleParticipants))
	for _, p := range e.Info.CycleParticipants {
		onCycle[p] = true
	}
	var blocked []string
	for _, u := range e.Info.UnprocessedNodes {
		if !onCycle[u] {
			blocked = append(blocked, u)
		}
	}
	if len(blocked) > 0 {
		msg += fmt.Sprintf("\nTypes blocked by cycle: %s", strings.Join(blocked, ", "))
	}
	return msg
}

// DetectIncompleteProcessing returns nil when every type can be ordered, and
// otherwise what blocked the ordering.
func (g *Graph) DetectIncompleteProcessing() *CycleInfo {
	ordered := g.kahn()
	if len(ordered) == len(g.Nodes) {
		return nil
	}

	done := make(map[string]bool, len(ordered))
	for _, name := range ordered {
		done[name] = true
	}
	rest := make(map[string]bool)
	var unprocessed []string
	for _, name := range g.order {
		if !done[name] {
			unprocessed = append(unprocessed, name)
			rest[name] = true
		}
	}

	var participants []string
	for _, name := range unprocessed {
		if g.FindCyclePath(name, rest) != nil {
			participants = append(participants, name)
		}
	}

	var path []string
	if len(participants) > 0 {
		path = g.FindCyclePath(participants[0], rest)
	}

	return &CycleInfo{
		TotalNodes:        len(g.Nodes),
		ProcessedNodes:    len(ordered),
		UnprocessedNodes:  unprocessed,
		CycleParticipants: participants,
		CyclePath:         path,
	}
}

// HasCycle reports whether the graph contains a cycle.
func (g *Graph) HasCycle() bool {
	return g.DetectIncompleteProcessing() != nil
}

// FindCyclePath returns a path from start back to start that stays inside
// allowed, or nil.
func (g *Graph) FindCyclePath(start string, allowed map[string]bool) []string {
	visited := make(map[string]bool)
	path := []string{start}
	if g.dfsFindPath(start, start, visited, allowed, &path) {
		return path
	}
	return nil
}

func (g *Graph) dfsFindPath(current, target string, visited, allowed map[string]bool, path *[]string) bool {
	for _, child := range g.GetChildren(current) {
		if !allowed[child] {
			continue
		}
		if child == target {
			*path = append(*path, target)
			return true
		}
		if visited[child] {
			continue
		}
		visited[child] = true
		*path = append(*path, child)
		if g.dfsFindPath(child, target, visited, allowed, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}

// TopologicalSort returns type names in Kahn order: every type comes after
// its base and after the type whose collection holds it. Ties keep insertion
// order. Returns a *CycleError if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	ordered := g.kahn()
	if len(ordered) != len(g.Nodes) {
		return nil, &CycleError{Info: g.DetectIncompleteProcessing()}
	}
	return ordered, nil
}

// BindingOrder returns the concrete types in the order their records are
// first bound. Abstract bases are left out.
func (g *Graph) BindingOrder() ([]string, error) {
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(order))
	for _, name := range order {
		if !g.Nodes[name].Abstract {
			out = append(out, name)
		}
	}
	return out, nil
}

// Validate fails fast on cycles.
func (g *Graph) Validate() error {
	if info := g.DetectIncompleteProcessing(); info != nil {
		return &CycleError{Info: info}
	}
	return nil
}
