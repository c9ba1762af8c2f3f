package formatters

import (
	"github.com/ccm2020/home-assistant/search"
)

// Namer resolves the display name of an item. Registry implements it.
type Namer interface {
	Name(kind search.Kind, id string) (string, bool)
}

// Document is everything a formatter renders for one search.
type Document struct {
	Entry   search.Node
	Results search.Results
	// Edges are the discovery steps between reported items, see search.Trace.ResultEdges.
	Edges []search.Edge
	// Names is optional.
	Names Namer
}

// Formatter is the interface that all result formatters must implement.
type Formatter interface {
	Format(doc Document) (string, error)
}

// NewDocument builds a Document from a trace.
func NewDocument(trace *search.Trace, names Namer) (Document, error) {
	edges, err := trace.ResultEdges()
	if err != nil {
		return Document{}, err
	}
	return Document{
		Entry:   trace.Entry,
		Results: trace.Results,
		Edges:   edges,
		Names:   names,
	}, nil
}

// Name returns the display name of n, or "" when it has none.
func (d Document) Name(n search.Node) string {
	if d.Names == nil {
		return ""
	}
	name, ok := d.Names.Name(n.Kind, n.ID)
	if !ok {
		return ""
	}
	return name
}

// Nodes returns the entry followed by every result, kinds in canonical order
// and ids sorted within a kind.
func (d Document) Nodes() []search.Node {
	nodes := []search.Node{d.Entry}
	for _, kind := range d.Results.Kinds() {
		for _, id := range d.Results[kind].Sorted() {
			nodes = append(nodes, search.Node{Kind: kind, ID: id})
		}
	}
	return nodes
}

// KindsPresent returns the kinds of Nodes, deduplicated, in canonical order.
func (d Document) KindsPresent() []search.Kind {
	present := map[search.Kind]bool{d.Entry.Kind: true}
	for _, kind := range d.Results.Kinds() {
		present[kind] = true
	}
	var kinds []search.Kind
	for _, kind := range search.SupportedKinds() {
		if present[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
