package mcp

import (
	"context"

	"github.com/ccm2020/home-assistant/search"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Namer resolves display names for items.
type Namer interface {
	Name(kind search.Kind, id string) (string, bool)
}

type Service struct {
	engine *search.Engine
	names  Namer
}

func NewService(engine *search.Engine, names Namer) *Service {
	return &Service{engine: engine, names: names}
}

func (s *Service) SearchRelated(ctx context.Context, req *mcp.CallToolRequest, args SearchRelatedArgs) (*mcp.CallToolResult, SearchRelatedResult, error) {
	kind, err := parseKind(args.ItemType)
	if err != nil {
		return nil, SearchRelatedResult{}, err
	}

	results, err := s.engine.Search(kind, args.ItemID)
	if err != nil {
		return nil, SearchRelatedResult{}, err
	}
	return nil, SearchRelatedResult{Results: results.Sorted(), Total: results.Len()}, nil
}

func (s *Service) ExplainRelation(ctx context.Context, req *mcp.CallToolRequest, args ExplainRelationArgs) (*mcp.CallToolResult, ExplainRelationResult, error) {
	kind, err := parseKind(args.ItemType)
	if err != nil {
		return nil, ExplainRelationResult{}, err
	}
	related, err := parseKind(args.RelatedType)
	if err != nil {
		return nil, ExplainRelationResult{}, err
	}

	trace, err := s.engine.Trace(kind, args.ItemID)
	if err != nil {
		return nil, ExplainRelationResult{}, err
	}

	path, err := trace.Explain(search.Node{Kind: related, ID: args.RelatedID})
	if err != nil {
		return nil, ExplainRelationResult{}, err
	}

	steps := make([]PathStep, 0, len(path))
	for _, n := range path {
		step := PathStep{Type: n.Kind.String(), ID: n.ID}
		if s.names != nil {
			step.Name, _ = s.names.Name(n.Kind, n.ID)
		}
		steps = append(steps, step)
	}
	return nil, ExplainRelationResult{Path: steps}, nil
}

func parseKind(raw string) (search.Kind, error) {
	kind, ok := search.ParseKind(raw)
	if !ok {
		return "", &search.InvalidKindError{Kind: raw}
	}
	return kind, nil
}
