package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for SchemaGen resources.
const uriScheme = "schemagen://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource exposing the whole database schema as DDL.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "schema",
		Name:        "schema",
		Description: "DDL statements defining the current database schema",
		MIMEType:    "application/sql",
	}, s.handleSchemaResource)
}

// handleSchemaResource returns the reconstructed DDL document.
func (s *Server) handleSchemaResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ddl, err := s.ports.Schema.Schema(ctx)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/sql",
			Text:     ddl,
		}},
	}, nil
}
