package mermaid

import (
	"fmt"
	"strings"

	"github.com/ccm2020/home-assistant/cmd/related/formatters"
	"github.com/ccm2020/home-assistant/search"
)

// Formatter formats search results as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the results and their discovery edges to Mermaid.js flowchart format.
func (f *Formatter) Format(doc formatters.Document) (string, error) {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't have dots or special characters.
	nodeIDs := make(map[search.Node]string)
	for i, node := range doc.Nodes() {
		nodeID := fmt.Sprintf("n%d", i)
		nodeIDs[node] = nodeID

		nodeLabel := node.ID
		if name := doc.Name(node); name != "" {
			nodeLabel = fmt.Sprintf("%s<br/>%s", name, node.ID)
		}
		nodeLabel = strings.ReplaceAll(nodeLabel, "\"", "#quot;")

		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]:::%s\n", nodeID, nodeLabel, node.Kind))
	}

	for _, edge := range doc.Edges {
		from, okFrom := nodeIDs[edge.From]
		to, okTo := nodeIDs[edge.To]
		if !okFrom || !okTo {
			return "", fmt.Errorf("edge %s -> %s references an unknown node", edge.From, edge.To)
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}

	for _, kind := range doc.KindsPresent() {
		sb.WriteString(fmt.Sprintf("    classDef %s fill:%s\n", kind, formatters.KindColor(kind)))
	}
	sb.WriteString(fmt.Sprintf("    style %s stroke-width:3px\n", nodeIDs[doc.Entry]))

	return sb.String(), nil
}
