package serve

import (
	"fmt"

	"github.com/ccm2020/home-assistant/search"
	"github.com/google/jsonschema-go/jsonschema"
)

const commandType = "search/related"

// relatedRequest is the search/related command message.
type relatedRequest struct {
	ID       int    `json:"id" jsonschema:"message id echoed in the reply"`
	Type     string `json:"type" jsonschema:"command name"`
	ItemType string `json:"item_type" jsonschema:"kind of the item to search from"`
	ItemID   string `json:"item_id" jsonschema:"id of the item to search from"`
}

// requestSchema derives the request schema from relatedRequest and narrows
// the command name and item type to their allowed values.
func requestSchema() (*jsonschema.Resolved, error) {
	schema, err := jsonschema.For[relatedRequest](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to derive request schema: %w", err)
	}

	schema.Properties["type"].Enum = []any{commandType}

	kinds := search.SupportedKinds()
	itemTypes := make([]any, 0, len(kinds))
	for _, kind := range kinds {
		itemTypes = append(itemTypes, kind.String())
	}
	schema.Properties["item_type"].Enum = itemTypes

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve request schema: %w", err)
	}
	return resolved, nil
}
