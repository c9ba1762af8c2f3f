package mcp

// --- Tool Arguments ---

type SearchRelatedArgs struct {
	ItemType string `json:"item_type" jsonschema:"Kind of the item to search from: area, automation, config_entry, device, entity, group, scene or script"`
	ItemID   string `json:"item_id" jsonschema:"Id of the item, e.g. a device id or an entity id such as light.kitchen"`
}

type SearchRelatedResult struct {
	// Results maps each kind to the sorted ids related to the item.
	Results map[string][]string `json:"results"`
	Total   int                 `json:"total"`
}

type ExplainRelationArgs struct {
	ItemType    string `json:"item_type" jsonschema:"Kind of the searched item"`
	ItemID      string `json:"item_id" jsonschema:"Id of the searched item"`
	RelatedType string `json:"related_type" jsonschema:"Kind of the related item to explain"`
	RelatedID   string `json:"related_id" jsonschema:"Id of the related item to explain"`
}

type PathStep struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ExplainRelationResult struct {
	Path []PathStep `json:"path"`
}
