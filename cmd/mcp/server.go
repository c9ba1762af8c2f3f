package mcp

import (
	"github.com/ccm2020/home-assistant/search"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMCPServer exposes the search engine as MCP tools.
func NewMCPServer(engine *search.Engine, names Namer, version string) *mcp.Server {
	service := NewService(engine, names)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "hass-search",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_related",
		Description: "List every area, device, entity, scene, group, automation, script and config entry related to an item of a Home Assistant configuration.",
	}, service.SearchRelated)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "explain_relation",
		Description: "Show the chain of relations through which a search from one item reached a related item.",
	}, service.ExplainRelation)

	return s
}
