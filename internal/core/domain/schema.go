package domain

// StatusSuccess is the status reported by mutating operations that completed.
// Zero-affected-row updates and deletes still report success; the layer is
// deliberately lenient about missing row IDs.
const StatusSuccess = "success"

// Column pairs a column name with its raw SQLite type/constraint string
// (e.g. "INTEGER PRIMARY KEY", "TEXT NOT NULL"). The type string is passed
// to the engine verbatim; the engine rejects malformed ones.
type Column struct {
	// Name is the column identifier. Must pass ValidateIdentifier.
	Name string

	// Type is the raw type/constraint clause for the column.
	Type string
}

// TableSpec describes a table to create.
// Column order is significant and preserved in the generated DDL, which is
// why columns are a slice rather than a map.
type TableSpec struct {
	// Name is the table identifier. Must pass ValidateIdentifier.
	Name string

	// Columns is the ordered column layout.
	Columns []Column
}

// Record maps column names to scalar values (text, integer, real, null or
// blob). Values are always bound as parameters, never interpolated into SQL.
type Record map[string]any

// Filters maps column names to exact-match values. All pairs are conjoined
// with AND into a WHERE clause. A nil or empty Filters matches every row.
type Filters map[string]any

// TableResult is the outcome of a create_table operation.
type TableResult struct {
	// Status is StatusSuccess on completion.
	Status string

	// Table is the name of the created table.
	Table string

	// Columns echoes the caller-supplied column layout.
	Columns []Column

	// SQL is the exact statement that was executed.
	SQL string
}

// InsertResult is the outcome of an insert_record operation.
type InsertResult struct {
	Status string

	// RecordID is the engine-assigned rowid of the inserted row.
	RecordID int64

	// Data echoes the inserted payload.
	Data Record

	// SQL is the executed statement with placeholders, not resolved values.
	SQL string
}

// UpdateResult is the outcome of an update_record operation.
// A non-existent RecordID still yields a success result with zero rows
// touched; the affected-row count is not checked.
type UpdateResult struct {
	Status   string
	RecordID int64
	Data     Record
	SQL      string
}

// DeleteResult is the outcome of a delete_record operation.
// Same zero-rows-affected tolerance as UpdateResult.
type DeleteResult struct {
	Status   string
	RecordID int64
	SQL      string
}
