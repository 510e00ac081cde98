// Package domain defines the core business entities for SchemaGen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TableSpec: An ordered column layout for a table to create
//   - Record: A column-to-value payload for row mutation
//   - Filters: Exact-match column predicates conjoined into a WHERE clause
//   - Result envelopes: Structured outcomes of mutating operations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
