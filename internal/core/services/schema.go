package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
	"github.com/schemagen-labs/schemagen-cli/internal/core/ports/driven"
	"github.com/schemagen-labs/schemagen-cli/internal/core/ports/driving"
	"github.com/schemagen-labs/schemagen-cli/internal/logger"
)

// Ensure SchemaService implements the interface.
var _ driving.SchemaService = (*SchemaService)(nil)

// PingResponse is the fixed liveness token returned by Ping.
const PingResponse = "Pong!"

// SchemaService validates requests and delegates execution to the schema
// store. Every identifier that would be interpolated into statement text is
// checked against the domain allow-list here, before the store builds any
// SQL. Values are never validated; the engine enforces type affinity.
type SchemaService struct {
	store driven.SchemaStore
}

// NewSchemaService creates a new schema service backed by store.
func NewSchemaService(store driven.SchemaStore) *SchemaService {
	return &SchemaService{store: store}
}

// Ping returns the fixed liveness token. No I/O.
func (s *SchemaService) Ping() string {
	return PingResponse
}

// CreateTable creates a table with the given ordered column layout.
func (s *SchemaService) CreateTable(ctx context.Context, spec domain.TableSpec) (*domain.TableResult, error) {
	call := callID()
	logger.Debug("[%s] create_table %s (%d columns)", call, spec.Name, len(spec.Columns))

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	result, err := s.store.CreateTable(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("creating table %s: %w", spec.Name, err)
	}

	logger.Debug("[%s] executed: %s", call, result.SQL)
	return result, nil
}

// InsertRecord inserts one row into the table.
func (s *SchemaService) InsertRecord(ctx context.Context, table string, data domain.Record) (*domain.InsertResult, error) {
	call := callID()
	logger.Debug("[%s] insert_record into %s", call, table)

	if err := validateRecordTarget(table, data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty record", domain.ErrInvalidInput)
	}

	result, err := s.store.InsertRecord(ctx, table, data)
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", table, err)
	}

	logger.Debug("[%s] executed: %s (rowid %d)", call, result.SQL, result.RecordID)
	return result, nil
}

// GetRecords returns rows matching the filters; nil filters match all.
func (s *SchemaService) GetRecords(ctx context.Context, table string, filters domain.Filters) ([]domain.Record, error) {
	call := callID()
	logger.Debug("[%s] get_records from %s (%d filters)", call, table, len(filters))

	if err := validateRecordTarget(table, domain.Record(filters)); err != nil {
		return nil, err
	}

	records, err := s.store.GetRecords(ctx, table, filters)
	if err != nil {
		return nil, fmt.Errorf("reading from %s: %w", table, err)
	}

	logger.Debug("[%s] matched %d rows", call, len(records))
	return records, nil
}

// UpdateRecord sets columns on the row addressed by rowid.
func (s *SchemaService) UpdateRecord(ctx context.Context, table string, recordID int64, data domain.Record) (*domain.UpdateResult, error) {
	call := callID()
	logger.Debug("[%s] update_record %s rowid=%d", call, table, recordID)

	if err := validateRecordTarget(table, data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty update", domain.ErrInvalidInput)
	}

	result, err := s.store.UpdateRecord(ctx, table, recordID, data)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", table, err)
	}

	logger.Debug("[%s] executed: %s", call, result.SQL)
	return result, nil
}

// DeleteRecord removes the row addressed by rowid.
func (s *SchemaService) DeleteRecord(ctx context.Context, table string, recordID int64) (*domain.DeleteResult, error) {
	call := callID()
	logger.Debug("[%s] delete_record %s rowid=%d", call, table, recordID)

	if err := domain.ValidateIdentifier(table); err != nil {
		return nil, fmt.Errorf("table name: %w", err)
	}

	result, err := s.store.DeleteRecord(ctx, table, recordID)
	if err != nil {
		return nil, fmt.Errorf("deleting from %s: %w", table, err)
	}

	logger.Debug("[%s] executed: %s", call, result.SQL)
	return result, nil
}

// DropTable drops the table if it exists.
func (s *SchemaService) DropTable(ctx context.Context, table string) (string, error) {
	call := callID()
	logger.Debug("[%s] drop_table %s", call, table)

	if err := domain.ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("table name: %w", err)
	}

	ddl, err := s.store.DropTable(ctx, table)
	if err != nil {
		return "", fmt.Errorf("dropping table %s: %w", table, err)
	}

	logger.Debug("[%s] executed: %s", call, ddl)
	return ddl, nil
}

// AddColumn appends a column to an existing table.
func (s *SchemaService) AddColumn(ctx context.Context, table, column, columnType string) (string, error) {
	call := callID()
	logger.Debug("[%s] add_column %s.%s %s", call, table, column, columnType)

	if err := domain.ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("table name: %w", err)
	}
	if err := domain.ValidateIdentifier(column); err != nil {
		return "", fmt.Errorf("column name: %w", err)
	}

	ddl, err := s.store.AddColumn(ctx, table, column, columnType)
	if err != nil {
		return "", fmt.Errorf("adding column %s to %s: %w", column, table, err)
	}

	logger.Debug("[%s] executed: %s", call, ddl)
	return ddl, nil
}

// DropColumn removes a column via the copy-rebuild sequence.
func (s *SchemaService) DropColumn(ctx context.Context, table, column string) (string, error) {
	call := callID()
	logger.Debug("[%s] drop_column %s.%s", call, table, column)

	if err := domain.ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("table name: %w", err)
	}
	if err := domain.ValidateIdentifier(column); err != nil {
		return "", fmt.Errorf("column name: %w", err)
	}

	ddl, err := s.store.DropColumn(ctx, table, column)
	if err != nil {
		return "", fmt.Errorf("dropping column %s from %s: %w", column, table, err)
	}

	logger.Debug("[%s] rebuilt %s: %s", call, table, ddl)
	return ddl, nil
}

// RenameTable renames a table.
func (s *SchemaService) RenameTable(ctx context.Context, oldName, newName string) (string, error) {
	call := callID()
	logger.Debug("[%s] rename_table %s -> %s", call, oldName, newName)

	if err := domain.ValidateIdentifier(oldName); err != nil {
		return "", fmt.Errorf("old table name: %w", err)
	}
	if err := domain.ValidateIdentifier(newName); err != nil {
		return "", fmt.Errorf("new table name: %w", err)
	}

	ddl, err := s.store.RenameTable(ctx, oldName, newName)
	if err != nil {
		return "", fmt.Errorf("renaming table %s: %w", oldName, err)
	}

	logger.Debug("[%s] executed: %s", call, ddl)
	return ddl, nil
}

// RenameColumn renames a column via the copy-rebuild sequence.
func (s *SchemaService) RenameColumn(ctx context.Context, table, oldName, newName string) (string, error) {
	call := callID()
	logger.Debug("[%s] rename_column %s.%s -> %s", call, table, oldName, newName)

	if err := domain.ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("table name: %w", err)
	}
	if err := domain.ValidateIdentifier(oldName); err != nil {
		return "", fmt.Errorf("old column name: %w", err)
	}
	if err := domain.ValidateIdentifier(newName); err != nil {
		return "", fmt.Errorf("new column name: %w", err)
	}

	ddl, err := s.store.RenameColumn(ctx, table, oldName, newName)
	if err != nil {
		return "", fmt.Errorf("renaming column %s in %s: %w", oldName, table, err)
	}

	logger.Debug("[%s] rebuilt %s: %s", call, table, ddl)
	return ddl, nil
}

// Schema reconstructs the DDL document for the whole database.
func (s *SchemaService) Schema(ctx context.Context) (string, error) {
	call := callID()
	logger.Debug("[%s] get_schema", call)

	ddl, err := s.store.Schema(ctx)
	if err != nil {
		return "", fmt.Errorf("reading schema: %w", err)
	}

	logger.Debug("[%s] schema document is %d bytes", call, len(ddl))
	return ddl, nil
}

// callID returns a short identifier used to correlate the log lines of one
// operation. Only computed when verbose output is on.
func callID() string {
	if !logger.IsVerbose() {
		return ""
	}
	return uuid.NewString()[:8]
}

// validateRecordTarget checks the table name plus every column key of a
// record or filter payload. Keys are checked in sorted order so the first
// failure reported is deterministic.
func validateRecordTarget(table string, data domain.Record) error {
	if err := domain.ValidateIdentifier(table); err != nil {
		return fmt.Errorf("table name: %w", err)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := domain.ValidateIdentifier(k); err != nil {
			return fmt.Errorf("column name: %w", err)
		}
	}
	return nil
}
