package mcp

import (
	"github.com/schemagen-labs/schemagen-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Schema performs schema and record mutation.
	Schema driving.SchemaService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Schema == nil {
		return ErrMissingSchemaService
	}
	return nil
}
