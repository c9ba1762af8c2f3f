package formatters

import (
	"fmt"
	"strings"
)

// TextFormatter lists related items grouped by kind.
type TextFormatter struct{}

// Format renders the results as a plain text listing.
func (f *TextFormatter) Format(doc Document) (string, error) {
	var sb strings.Builder

	if doc.Results.Len() == 0 {
		sb.WriteString(fmt.Sprintf("Nothing is related to %s %s.\n", doc.Entry.Kind, doc.Entry.ID))
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("Related to %s %s:\n", doc.Entry.Kind, doc.Entry.ID))
	for _, kind := range doc.Results.Kinds() {
		ids := doc.Results[kind].Sorted()
		sb.WriteString(fmt.Sprintf("\n%s (%d)\n", kind, len(ids)))
		for _, id := range ids {
			sb.WriteString("  - ")
			sb.WriteString(id)
			if name := doc.Name(nodeOf(kind, id)); name != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", name))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
