package dot

import (
	"fmt"
	"strings"

	"github.com/ccm2020/home-assistant/cmd/related/formatters"
	"github.com/ccm2020/home-assistant/search"
)

// Formatter formats search results as Graphviz DOT.
type Formatter struct{}

// Format converts the results and their discovery edges to Graphviz DOT format.
func (f *Formatter) Format(doc formatters.Document) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph related {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box, style=\"rounded,filled\"];\n")
	sb.WriteString("\n")

	for _, node := range doc.Nodes() {
		attrs := []string{
			fmt.Sprintf("label=%q", label(doc, node)),
			"fillcolor=" + formatters.KindColor(node.Kind),
		}
		// The entry point is drawn with a heavier border
		if node == doc.Entry {
			attrs = append(attrs, "penwidth=2")
		}
		sb.WriteString(fmt.Sprintf("  %q [%s];\n", node.String(), strings.Join(attrs, ", ")))
	}

	if len(doc.Edges) > 0 {
		sb.WriteString("\n")
	}
	for _, edge := range doc.Edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.From.String(), edge.To.String()))
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

func label(doc formatters.Document, node search.Node) string {
	if name := doc.Name(node); name != "" {
		return name + "\n" + node.ID
	}
	return node.ID
}
