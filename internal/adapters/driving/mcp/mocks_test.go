package mcp

import (
	"context"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
)

// mockSchemaService is a mock implementation of driving.SchemaService.
// Canned results are returned for every operation; err, when set, is
// returned by all of them.
type mockSchemaService struct {
	tableResult  *domain.TableResult
	insertResult *domain.InsertResult
	updateResult *domain.UpdateResult
	deleteResult *domain.DeleteResult
	records      []domain.Record
	ddl          string
	err          error

	lastTable string
}

func (m *mockSchemaService) Ping() string { return "Pong!" }

func (m *mockSchemaService) CreateTable(_ context.Context, spec domain.TableSpec) (*domain.TableResult, error) {
	m.lastTable = spec.Name
	return m.tableResult, m.err
}

func (m *mockSchemaService) InsertRecord(_ context.Context, table string, _ domain.Record) (*domain.InsertResult, error) {
	m.lastTable = table
	return m.insertResult, m.err
}

func (m *mockSchemaService) GetRecords(_ context.Context, table string, _ domain.Filters) ([]domain.Record, error) {
	m.lastTable = table
	return m.records, m.err
}

func (m *mockSchemaService) UpdateRecord(_ context.Context, table string, _ int64, _ domain.Record) (*domain.UpdateResult, error) {
	m.lastTable = table
	return m.updateResult, m.err
}

func (m *mockSchemaService) DeleteRecord(_ context.Context, table string, _ int64) (*domain.DeleteResult, error) {
	m.lastTable = table
	return m.deleteResult, m.err
}

func (m *mockSchemaService) DropTable(_ context.Context, table string) (string, error) {
	m.lastTable = table
	return m.ddl, m.err
}

func (m *mockSchemaService) AddColumn(_ context.Context, table, _, _ string) (string, error) {
	m.lastTable = table
	return m.ddl, m.err
}

func (m *mockSchemaService) DropColumn(_ context.Context, table, _ string) (string, error) {
	m.lastTable = table
	return m.ddl, m.err
}

func (m *mockSchemaService) RenameTable(_ context.Context, oldName, _ string) (string, error) {
	m.lastTable = oldName
	return m.ddl, m.err
}

func (m *mockSchemaService) RenameColumn(_ context.Context, table, _, _ string) (string, error) {
	m.lastTable = table
	return m.ddl, m.err
}

func (m *mockSchemaService) Schema(_ context.Context) (string, error) {
	return m.ddl, m.err
}
