// Package sqlite implements the SchemaStore port over a single SQLite
// database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Each operation translates
// one typed request into one SQL statement executed through database/sql,
// which preserves the per-call contract: calls are isolated and each
// statement commits on its own.
//
// Column drop and rename have no native SQLite primitive (on the dialect
// subset this layer targets), so both run a copy-rebuild sequence: introspect
// the column list with PRAGMA table_info, create a shadow table with a
// CREATE TABLE ... AS SELECT projection, drop the original, and rename the
// shadow back. The whole sequence runs inside one transaction so an
// interrupted rebuild never leaves the schema half-migrated.
//
// # Data Location
//
// By default the database is stored at ~/.schemagen/data/schema_gen.db, or
// ~/.schemagen/test-data/schema_gen.db when SCHEMAGEN_TESTING is set.
//
// # Identifier Safety
//
// Table and column names are interpolated into statement text and MUST be
// validated with domain.ValidateIdentifier before reaching this package.
// The service layer does that for every caller-facing path. Values are
// always bound parameters.
package sqlite
