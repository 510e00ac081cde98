package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
)

// ColumnInput is one column definition inside a create_table call.
// Columns travel as an ordered array because JSON object keys do not
// preserve order, and the generated DDL must.
type ColumnInput struct {
	Name string `json:"name" jsonschema:"column name"`
	Type string `json:"type" jsonschema:"SQLite type and constraints, e.g. INTEGER PRIMARY KEY"`
}

// PingInput is the (empty) input schema for the ping tool.
type PingInput struct{}

// PingOutput is the output schema for the ping tool.
type PingOutput struct {
	Message string `json:"message"`
}

// CreateTableInput is the input schema for the create_table tool.
type CreateTableInput struct {
	TableName string        `json:"table_name" jsonschema:"name of the table to create"`
	Columns   []ColumnInput `json:"columns" jsonschema:"ordered column definitions"`
}

// CreateTableOutput is the output schema for the create_table tool.
type CreateTableOutput struct {
	Status  string        `json:"status"`
	Table   string        `json:"table"`
	Columns []ColumnInput `json:"columns"`
	SQL     string        `json:"sql"`
}

// InsertRecordInput is the input schema for the insert_record tool.
type InsertRecordInput struct {
	TableName string         `json:"table_name" jsonschema:"name of the table to insert into"`
	Data      map[string]any `json:"data" jsonschema:"column names and values to insert"`
}

// InsertRecordOutput is the output schema for the insert_record tool.
type InsertRecordOutput struct {
	Status   string         `json:"status"`
	RecordID int64          `json:"record_id"`
	Data     map[string]any `json:"data"`
	SQL      string         `json:"sql"`
}

// GetRecordsInput is the input schema for the get_records tool.
type GetRecordsInput struct {
	TableName string         `json:"table_name" jsonschema:"name of the table to query"`
	Filters   map[string]any `json:"filters,omitempty" jsonschema:"optional exact-match column filters, conjoined with AND"`
}

// GetRecordsOutput is the output schema for the get_records tool.
type GetRecordsOutput struct {
	Records []map[string]any `json:"records"`
	Count   int              `json:"count"`
}

// UpdateRecordInput is the input schema for the update_record tool.
type UpdateRecordInput struct {
	TableName string         `json:"table_name" jsonschema:"name of the table containing the record"`
	RecordID  int64          `json:"record_id" jsonschema:"rowid of the record to update"`
	Data      map[string]any `json:"data" jsonschema:"column names and new values"`
}

// UpdateRecordOutput is the output schema for the update_record tool.
type UpdateRecordOutput struct {
	Status   string         `json:"status"`
	RecordID int64          `json:"record_id"`
	Data     map[string]any `json:"data"`
	SQL      string         `json:"sql"`
}

// DeleteRecordInput is the input schema for the delete_record tool.
type DeleteRecordInput struct {
	TableName string `json:"table_name" jsonschema:"name of the table containing the record"`
	RecordID  int64  `json:"record_id" jsonschema:"rowid of the record to delete"`
}

// DeleteRecordOutput is the output schema for the delete_record tool.
type DeleteRecordOutput struct {
	Status   string `json:"status"`
	RecordID int64  `json:"record_id"`
	SQL      string `json:"sql"`
}

// DropTableInput is the input schema for the drop_table tool.
type DropTableInput struct {
	TableName string `json:"table_name" jsonschema:"name of the table to drop"`
}

// AddColumnInput is the input schema for the add_column tool.
type AddColumnInput struct {
	TableName  string `json:"table_name" jsonschema:"name of the table to modify"`
	ColumnName string `json:"column_name" jsonschema:"name of the new column"`
	ColumnType string `json:"column_type" jsonschema:"SQLite type of the new column"`
}

// DropColumnInput is the input schema for the drop_column tool.
type DropColumnInput struct {
	TableName  string `json:"table_name" jsonschema:"name of the table to modify"`
	ColumnName string `json:"column_name" jsonschema:"name of the column to drop"`
}

// RenameTableInput is the input schema for the rename_table tool.
type RenameTableInput struct {
	OldName string `json:"old_name" jsonschema:"current name of the table"`
	NewName string `json:"new_name" jsonschema:"new name for the table"`
}

// RenameColumnInput is the input schema for the rename_column tool.
type RenameColumnInput struct {
	TableName string `json:"table_name" jsonschema:"name of the table containing the column"`
	OldName   string `json:"old_name" jsonschema:"current name of the column"`
	NewName   string `json:"new_name" jsonschema:"new name for the column"`
}

// GetSchemaInput is the (empty) input schema for the get_schema tool.
type GetSchemaInput struct{}

// DDLOutput carries the DDL text produced by schema-changing tools.
type DDLOutput struct {
	DDL string `json:"ddl"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ping",
		Description: "Ping the SchemaGen server",
	}, s.handlePing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_table",
		Description: "Create a new table with the specified columns",
	}, s.handleCreateTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "insert_record",
		Description: "Insert a new record into the specified table",
	}, s.handleInsertRecord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_records",
		Description: "Retrieve records from the specified table, optionally filtered",
	}, s.handleGetRecords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_record",
		Description: "Update an existing record addressed by rowid",
	}, s.handleUpdateRecord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete a record addressed by rowid",
	}, s.handleDeleteRecord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drop_table",
		Description: "Drop (delete) a table from the database",
	}, s.handleDropTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_column",
		Description: "Add a new column to an existing table",
	}, s.handleAddColumn)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drop_column",
		Description: "Drop (delete) a column from a table",
	}, s.handleDropColumn)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rename_table",
		Description: "Rename an existing table",
	}, s.handleRenameTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rename_column",
		Description: "Rename a column in a table",
	}, s.handleRenameColumn)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_schema",
		Description: "Get the current database schema as DDL statements",
	}, s.handleGetSchema)
}

// handlePing handles the ping tool invocation.
func (s *Server) handlePing(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ PingInput,
) (*mcp.CallToolResult, PingOutput, error) {
	return nil, PingOutput{Message: s.ports.Schema.Ping()}, nil
}

// handleCreateTable handles the create_table tool invocation.
func (s *Server) handleCreateTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateTableInput,
) (*mcp.CallToolResult, CreateTableOutput, error) {
	spec := domain.TableSpec{
		Name:    input.TableName,
		Columns: make([]domain.Column, len(input.Columns)),
	}
	for i, col := range input.Columns {
		spec.Columns[i] = domain.Column{Name: col.Name, Type: col.Type}
	}

	result, err := s.ports.Schema.CreateTable(ctx, spec)
	if err != nil {
		return nil, CreateTableOutput{}, err
	}

	output := CreateTableOutput{
		Status:  result.Status,
		Table:   result.Table,
		Columns: input.Columns,
		SQL:     result.SQL,
	}
	return nil, output, nil
}

// handleInsertRecord handles the insert_record tool invocation.
func (s *Server) handleInsertRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertRecordInput,
) (*mcp.CallToolResult, InsertRecordOutput, error) {
	result, err := s.ports.Schema.InsertRecord(ctx, input.TableName, domain.Record(input.Data))
	if err != nil {
		return nil, InsertRecordOutput{}, err
	}

	output := InsertRecordOutput{
		Status:   result.Status,
		RecordID: result.RecordID,
		Data:     result.Data,
		SQL:      result.SQL,
	}
	return nil, output, nil
}

// handleGetRecords handles the get_records tool invocation.
func (s *Server) handleGetRecords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecordsInput,
) (*mcp.CallToolResult, GetRecordsOutput, error) {
	records, err := s.ports.Schema.GetRecords(ctx, input.TableName, domain.Filters(input.Filters))
	if err != nil {
		return nil, GetRecordsOutput{}, err
	}

	output := GetRecordsOutput{
		Records: make([]map[string]any, len(records)),
		Count:   len(records),
	}
	for i, record := range records {
		output.Records[i] = record
	}
	return nil, output, nil
}

// handleUpdateRecord handles the update_record tool invocation.
func (s *Server) handleUpdateRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateRecordInput,
) (*mcp.CallToolResult, UpdateRecordOutput, error) {
	result, err := s.ports.Schema.UpdateRecord(ctx, input.TableName, input.RecordID, domain.Record(input.Data))
	if err != nil {
		return nil, UpdateRecordOutput{}, err
	}

	output := UpdateRecordOutput{
		Status:   result.Status,
		RecordID: result.RecordID,
		Data:     result.Data,
		SQL:      result.SQL,
	}
	return nil, output, nil
}

// handleDeleteRecord handles the delete_record tool invocation.
func (s *Server) handleDeleteRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteRecordInput,
) (*mcp.CallToolResult, DeleteRecordOutput, error) {
	result, err := s.ports.Schema.DeleteRecord(ctx, input.TableName, input.RecordID)
	if err != nil {
		return nil, DeleteRecordOutput{}, err
	}

	output := DeleteRecordOutput{
		Status:   result.Status,
		RecordID: result.RecordID,
		SQL:      result.SQL,
	}
	return nil, output, nil
}

// handleDropTable handles the drop_table tool invocation.
func (s *Server) handleDropTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DropTableInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.DropTable(ctx, input.TableName)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}

// handleAddColumn handles the add_column tool invocation.
func (s *Server) handleAddColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddColumnInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.AddColumn(ctx, input.TableName, input.ColumnName, input.ColumnType)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}

// handleDropColumn handles the drop_column tool invocation.
func (s *Server) handleDropColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DropColumnInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.DropColumn(ctx, input.TableName, input.ColumnName)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}

// handleRenameTable handles the rename_table tool invocation.
func (s *Server) handleRenameTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameTableInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.RenameTable(ctx, input.OldName, input.NewName)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}

// handleRenameColumn handles the rename_column tool invocation.
func (s *Server) handleRenameColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameColumnInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.RenameColumn(ctx, input.TableName, input.OldName, input.NewName)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}

// handleGetSchema handles the get_schema tool invocation.
func (s *Server) handleGetSchema(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetSchemaInput,
) (*mcp.CallToolResult, DDLOutput, error) {
	ddl, err := s.ports.Schema.Schema(ctx)
	if err != nil {
		return nil, DDLOutput{}, err
	}
	return nil, DDLOutput{DDL: ddl}, nil
}
