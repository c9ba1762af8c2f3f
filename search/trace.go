package search

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Trace is a search result together with the tree of discoveries that produced it.
// Each edge points from the item being expanded to an item it discovered first.
type Trace struct {
	Entry   Node
	Results Results
	graph   graphlib.Graph[string, Node]
}

// Edge is one discovery step of a trace.
type Edge struct {
	From Node
	To   Node
}

// PathTo returns the discovery chain from the entry item to target, both included.
func (t *Trace) PathTo(target Node) ([]Node, error) {
	if _, err := t.graph.Vertex(target.String()); err != nil {
		if errors.Is(err, graphlib.ErrVertexNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, target)
		}
		return nil, err
	}

	hashes, err := graphlib.ShortestPath(t.graph, t.Entry.String(), target.String())
	if err != nil {
		return nil, fmt.Errorf("failed to find path from %s to %s: %w", t.Entry, target, err)
	}

	path := make([]Node, 0, len(hashes))
	for _, hash := range hashes {
		node, err := t.graph.Vertex(hash)
		if err != nil {
			return nil, err
		}
		path = append(path, node)
	}
	return path, nil
}

// Edges returns every discovery step, sorted by source then target.
func (t *Trace) Edges() ([]Edge, error) {
	adjacencyMap, err := t.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for source, targets := range adjacencyMap {
		from, err := t.graph.Vertex(source)
		if err != nil {
			return nil, err
		}
		for target := range targets {
			to, err := t.graph.Vertex(target)
			if err != nil {
				return nil, err
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From.String() != edges[j].From.String() {
			return edges[i].From.String() < edges[j].From.String()
		}
		return edges[i].To.String() < edges[j].To.String()
	})
	return edges, nil
}

// Contains reports whether the trace discovered n at any point, including
// items later dropped from the results.
func (t *Trace) Contains(n Node) bool {
	_, err := t.graph.Vertex(n.String())
	return err == nil
}

// ResultEdges returns the discovery steps between the entry and the reported
// items. An entity dropped from the results because it is reported under its
// specific kind is folded into that node.
func (t *Trace) ResultEdges() ([]Edge, error) {
	edges, err := t.Edges()
	if err != nil {
		return nil, err
	}

	seen := make(map[Edge]bool, len(edges))
	var out []Edge
	for _, e := range edges {
		from, ok := t.shown(e.From)
		if !ok {
			continue
		}
		to, ok := t.shown(e.To)
		if !ok || from == to {
			continue
		}
		folded := Edge{From: from, To: to}
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out, nil
}

func (t *Trace) shown(n Node) (Node, bool) {
	if n == t.Entry || t.Results.Has(n.Kind, n.ID) {
		return n, true
	}
	if n.Kind != KindEntity {
		return Node{}, false
	}
	for _, kind := range specificEntityKinds {
		specific := Node{Kind: kind, ID: n.ID}
		if specific == t.Entry || t.Results.Has(kind, n.ID) {
			return specific, true
		}
	}
	return Node{}, false
}

// Explain returns the discovery chain from the entry to a reported item, with
// hidden entity copies folded into their specific kind.
func (t *Trace) Explain(target Node) ([]Node, error) {
	if target != t.Entry && !t.Results.Has(target.Kind, target.ID) {
		return nil, fmt.Errorf("%w: %s is not related to %s", ErrNotRelated, target, t.Entry)
	}

	path, err := t.PathTo(target)
	if err != nil {
		return nil, err
	}

	folded := make([]Node, 0, len(path))
	for _, n := range path {
		shown, ok := t.shown(n)
		if !ok {
			continue
		}
		if len(folded) > 0 && folded[len(folded)-1] == shown {
			continue
		}
		folded = append(folded, shown)
	}
	return folded, nil
}
