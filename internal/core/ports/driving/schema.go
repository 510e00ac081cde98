package driving

import (
	"context"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
)

// SchemaService exposes schema and record mutation to external actors.
// It validates identifiers before any SQL is built and delegates execution
// to the configured SchemaStore.
type SchemaService interface {
	// Ping returns a fixed liveness token. No I/O.
	Ping() string

	// CreateTable creates a table with the given ordered column layout.
	CreateTable(ctx context.Context, spec domain.TableSpec) (*domain.TableResult, error)

	// InsertRecord inserts one row into the table.
	InsertRecord(ctx context.Context, table string, data domain.Record) (*domain.InsertResult, error)

	// GetRecords returns rows matching the filters; nil filters match all.
	GetRecords(ctx context.Context, table string, filters domain.Filters) ([]domain.Record, error)

	// UpdateRecord sets columns on the row addressed by rowid.
	UpdateRecord(ctx context.Context, table string, recordID int64, data domain.Record) (*domain.UpdateResult, error)

	// DeleteRecord removes the row addressed by rowid.
	DeleteRecord(ctx context.Context, table string, recordID int64) (*domain.DeleteResult, error)

	// DropTable drops the table if it exists.
	DropTable(ctx context.Context, table string) (string, error)

	// AddColumn appends a column to an existing table.
	AddColumn(ctx context.Context, table, column, columnType string) (string, error)

	// DropColumn removes a column via the copy-rebuild sequence.
	DropColumn(ctx context.Context, table, column string) (string, error)

	// RenameTable renames a table.
	RenameTable(ctx context.Context, oldName, newName string) (string, error)

	// RenameColumn renames a column via the copy-rebuild sequence.
	RenameColumn(ctx context.Context, table, oldName, newName string) (string, error)

	// Schema reconstructs the DDL document for the whole database.
	Schema(ctx context.Context) (string, error)
}
