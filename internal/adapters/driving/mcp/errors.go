// Package mcp provides an MCP (Model Context Protocol) server adapter for
// SchemaGen. It lets AI assistants mutate and introspect the embedded
// database through typed tool calls.
package mcp

import "errors"

// ErrMissingSchemaService is returned when the schema service is not provided.
var ErrMissingSchemaService = errors.New("mcp: schema service is required")
