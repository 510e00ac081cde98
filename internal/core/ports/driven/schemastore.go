package driven

import (
	"context"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
)

// SchemaStore performs schema and record mutation against the embedded
// database. Backed by SQLite.
//
// Every method executes a single statement (or, for column drop/rename, a
// copy-rebuild sequence inside one transaction) and commits before
// returning. Calls are stateless and independent; the only durable state
// is the database file itself.
type SchemaStore interface {
	// CreateTable creates a table with the given ordered column layout.
	// Idempotent: an existing table with the same name is a no-op success.
	CreateTable(ctx context.Context, spec domain.TableSpec) (*domain.TableResult, error)

	// InsertRecord inserts one row and reports its engine-assigned rowid.
	InsertRecord(ctx context.Context, table string, data domain.Record) (*domain.InsertResult, error)

	// GetRecords returns all rows matching the filters, conjoined with AND.
	// Nil or empty filters return every row. No matches is an empty slice,
	// not an error.
	GetRecords(ctx context.Context, table string, filters domain.Filters) ([]domain.Record, error)

	// UpdateRecord sets the given columns on the row addressed by rowid.
	// A missing rowid still succeeds with zero rows affected.
	UpdateRecord(ctx context.Context, table string, recordID int64, data domain.Record) (*domain.UpdateResult, error)

	// DeleteRecord removes the row addressed by rowid.
	// Same zero-rows-affected tolerance as UpdateRecord.
	DeleteRecord(ctx context.Context, table string, recordID int64) (*domain.DeleteResult, error)

	// DropTable drops the table if it exists. Idempotent.
	// Returns the executed DDL.
	DropTable(ctx context.Context, table string) (string, error)

	// AddColumn appends a column to an existing table.
	// Returns the executed DDL.
	AddColumn(ctx context.Context, table, column, columnType string) (string, error)

	// DropColumn removes a column via the copy-rebuild sequence.
	// Returns a synthesized ALTER TABLE ... DROP COLUMN statement
	// describing the change, not the literal statements executed.
	DropColumn(ctx context.Context, table, column string) (string, error)

	// RenameTable renames a table. Returns the executed DDL.
	RenameTable(ctx context.Context, oldName, newName string) (string, error)

	// RenameColumn renames a column via the copy-rebuild sequence.
	// Returns a synthesized ALTER TABLE ... RENAME COLUMN statement.
	RenameColumn(ctx context.Context, table, oldName, newName string) (string, error)

	// Schema reconstructs the DDL for the whole database, one statement per
	// table joined with ";\n". An empty database yields "".
	Schema(ctx context.Context) (string, error)

	// Close releases the underlying database handle.
	Close() error
}
