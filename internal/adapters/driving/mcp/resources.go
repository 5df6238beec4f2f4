package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for leveller resources.
	uriScheme = "leveller://"

	jsonMIMEType = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dialect",
		Name:        "dialect",
		Description: "Level keywords, domain names and ordinal words used to segment PDF text",
		MIMEType:    jsonMIMEType,
	}, s.handleDialectResource)

	if s.session == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "comparisons",
		Name:        "comparisons",
		Description: "Scored level comparisons recorded in this session",
		MIMEType:    jsonMIMEType,
	}, s.handleComparisonsResource)
}

// handleDialectResource returns the active dialect.
func (s *Server) handleDialectResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	dialect := domain.DefaultDialect()
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		dialect = settings.Dialect
	}

	return jsonResource(req.Params.URI, dialect)
}

// handleComparisonsResource returns the session's comparison history.
func (s *Server) handleComparisonsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records := s.session.Records()
	if records == nil {
		records = []domain.ComparisonRecord{}
	}
	return jsonResource(req.Params.URI, records)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}
