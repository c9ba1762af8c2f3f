package formatters

import (
	"encoding/json"

	"github.com/ccm2020/home-assistant/search"
)

// JSONFormatter formats results as the kind-to-ids mapping returned by the search API.
type JSONFormatter struct{}

// Format converts the results to indented JSON.
func (f *JSONFormatter) Format(doc Document) (string, error) {
	data, err := json.MarshalIndent(doc.Results.Sorted(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func nodeOf(kind search.Kind, id string) search.Node {
	return search.Node{Kind: kind, ID: id}
}
