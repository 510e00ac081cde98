package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
	"github.com/schemagen-labs/schemagen-cli/internal/core/ports/driven"
)

// TestingEnv redirects the default data directory to the test path when set.
const TestingEnv = "SCHEMAGEN_TESTING"

// dbFileName is the fixed name of the database file inside the data directory.
const dbFileName = "schema_gen.db"

// Ensure Store implements the interface.
var _ driven.SchemaStore = (*Store)(nil)

// Store is the SQLite-backed schema store. It holds one database handle for
// its lifetime; database/sql hands each statement its own pooled connection,
// which keeps calls isolated from each other.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a schema store at the specified data directory.
// If dataDir is empty, defaults to ~/.schemagen/data (or
// ~/.schemagen/test-data when SCHEMAGEN_TESTING is set).
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		sub := "data"
		if os.Getenv(TestingEnv) != "" {
			sub = "test-data"
		}
		dataDir = filepath.Join(home, ".schemagen", sub)
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CreateTable creates a table preserving the caller-supplied column order.
// Uses IF NOT EXISTS, so re-creating an existing table is a no-op success.
func (s *Store) CreateTable(ctx context.Context, spec domain.TableSpec) (*domain.TableResult, error) {
	defs := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		defs[i] = col.Name + " " + col.Type
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", spec.Name, strings.Join(defs, ", "))

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &domain.TableResult{
		Status:  domain.StatusSuccess,
		Table:   spec.Name,
		Columns: spec.Columns,
		SQL:     query,
	}, nil
}

// InsertRecord inserts one row. Column order inside the statement is sorted
// so the generated SQL is deterministic for a given payload.
func (s *Store) InsertRecord(ctx context.Context, table string, data domain.Record) (*domain.InsertResult, error) {
	cols := sortedKeys(data)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = data[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inserting record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted rowid: %w", err)
	}

	return &domain.InsertResult{
		Status:   domain.StatusSuccess,
		RecordID: id,
		Data:     data,
		SQL:      query,
	}, nil
}

// GetRecords returns every row matching the filters, all filter pairs
// conjoined with AND. Nil or empty filters return the whole table.
func (s *Store) GetRecords(ctx context.Context, table string, filters domain.Filters) ([]domain.Record, error) {
	query := "SELECT * FROM " + table
	var args []any

	if len(filters) > 0 {
		cols := sortedKeys(domain.Record(filters))
		conditions := make([]string, len(cols))
		args = make([]any, len(cols))
		for i, col := range cols {
			conditions[i] = col + " = ?"
			args[i] = filters[col]
		}
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading column names: %w", err)
	}

	records := []domain.Record{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		record := make(domain.Record, len(columns))
		for i, col := range columns {
			record[col] = values[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// UpdateRecord sets the given columns on the row addressed by rowid.
// A missing rowid succeeds with zero rows affected; the count is not checked.
func (s *Store) UpdateRecord(ctx context.Context, table string, recordID int64, data domain.Record) (*domain.UpdateResult, error) {
	cols := sortedKeys(data)
	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = col + " = ?"
		args = append(args, data[col])
	}
	args = append(args, recordID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE rowid = ?", table, strings.Join(assignments, ", "))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	return &domain.UpdateResult{
		Status:   domain.StatusSuccess,
		RecordID: recordID,
		Data:     data,
		SQL:      query,
	}, nil
}

// DeleteRecord removes the row addressed by rowid.
// Same zero-rows-affected tolerance as UpdateRecord.
func (s *Store) DeleteRecord(ctx context.Context, table string, recordID int64) (*domain.DeleteResult, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE rowid = ?", table)

	if _, err := s.db.ExecContext(ctx, query, recordID); err != nil {
		return nil, fmt.Errorf("deleting record: %w", err)
	}

	return &domain.DeleteResult{
		Status:   domain.StatusSuccess,
		RecordID: recordID,
		SQL:      query,
	}, nil
}

// DropTable drops the table if it exists. Idempotent.
func (s *Store) DropTable(ctx context.Context, table string) (string, error) {
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return "", fmt.Errorf("dropping table: %w", err)
	}
	return query, nil
}

// AddColumn appends a column to an existing table. The engine rejects
// duplicate column names and malformed type clauses.
func (s *Store) AddColumn(ctx context.Context, table, column, columnType string) (string, error) {
	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return "", fmt.Errorf("adding column: %w", err)
	}
	return query, nil
}

// DropColumn removes a column via the copy-rebuild sequence, all inside one
// transaction. Returns a synthesized ALTER TABLE statement describing the
// change for caller-facing logging; the literal statements executed are the
// CREATE/DROP/RENAME triple.
func (s *Store) DropColumn(ctx context.Context, table, column string) (string, error) {
	err := s.rebuild(ctx, table, func(existing []string) ([]string, error) {
		kept := make([]string, 0, len(existing))
		found := false
		for _, name := range existing {
			if name == column {
				found = true
				continue
			}
			kept = append(kept, name)
		}
		if !found {
			return nil, fmt.Errorf("column %s in table %s: %w", column, table, domain.ErrNotFound)
		}
		if len(kept) == 0 {
			return nil, fmt.Errorf("%w: cannot drop the only column of %s", domain.ErrInvalidInput, table)
		}
		return kept, nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", table, column), nil
}

// RenameTable renames a table.
func (s *Store) RenameTable(ctx context.Context, oldName, newName string) (string, error) {
	query := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", oldName, newName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return "", fmt.Errorf("renaming table: %w", err)
	}
	return query, nil
}

// RenameColumn renames a column via the same copy-rebuild sequence as
// DropColumn, projecting the old column under its new name.
func (s *Store) RenameColumn(ctx context.Context, table, oldName, newName string) (string, error) {
	err := s.rebuild(ctx, table, func(existing []string) ([]string, error) {
		projected := make([]string, len(existing))
		found := false
		for i, name := range existing {
			if name == oldName {
				projected[i] = name + " AS " + newName
				found = true
				continue
			}
			projected[i] = name
		}
		if !found {
			return nil, fmt.Errorf("column %s in table %s: %w", oldName, table, domain.ErrNotFound)
		}
		return projected, nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s", table, oldName, newName), nil
}

// Schema reconstructs the DDL for the whole database by reading the stored
// creation statements from sqlite_master, joined with ";\n" in catalog
// enumeration order. An empty database yields "".
func (s *Store) Schema(ctx context.Context) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND sql IS NOT NULL")
	if err != nil {
		return "", fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var statements []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ddl string
		if err := rows.Scan(&ddl); err != nil {
			return "", fmt.Errorf("scanning catalog entry: %w", err)
		}
		statements = append(statements, ddl)
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating catalog: %w", err)
	}

	return strings.Join(statements, ";\n"), nil
}

// rebuild runs the copy-rebuild sequence for table inside one transaction:
// introspect the current column list, let project transform it into a SELECT
// projection, create a shadow table from that projection, drop the original,
// and rename the shadow back to the original name.
func (s *Store) rebuild(ctx context.Context, table string, project func(existing []string) ([]string, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	existing, err := tableColumns(ctx, tx, table)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
	}

	projection, err := project(existing)
	if err != nil {
		return err
	}

	shadow := table + "_new"
	createSQL := fmt.Sprintf("CREATE TABLE %s AS SELECT %s FROM %s",
		shadow, strings.Join(projection, ", "), table)
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("creating shadow table: %w", err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", table)); err != nil {
		return fmt.Errorf("dropping original table: %w", err)
	}

	renameSQL := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", shadow, table)
	if _, err := tx.ExecContext(ctx, renameSQL); err != nil {
		return fmt.Errorf("renaming shadow table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

// tableColumns returns the ordered column names of table via PRAGMA
// table_info. An unknown table yields an empty list, not an error.
func tableColumns(ctx context.Context, tx *sql.Tx, table string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("introspecting table: %w", err)
	}
	defer rows.Close()

	var names []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning table info: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table info: %w", err)
	}

	return names, nil
}

// sortedKeys returns the record's column names in sorted order.
func sortedKeys(data domain.Record) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
