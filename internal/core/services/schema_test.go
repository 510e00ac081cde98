package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
)

// mockSchemaStore records the last call made to it and returns canned
// results, so tests can assert validation happens before delegation.
type mockSchemaStore struct {
	lastOp    string
	lastTable string
	err       error

	records []domain.Record
	ddl     string
}

func (m *mockSchemaStore) CreateTable(_ context.Context, spec domain.TableSpec) (*domain.TableResult, error) {
	m.lastOp, m.lastTable = "create_table", spec.Name
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TableResult{Status: domain.StatusSuccess, Table: spec.Name, Columns: spec.Columns, SQL: "CREATE TABLE"}, nil
}

func (m *mockSchemaStore) InsertRecord(_ context.Context, table string, data domain.Record) (*domain.InsertResult, error) {
	m.lastOp, m.lastTable = "insert_record", table
	if m.err != nil {
		return nil, m.err
	}
	return &domain.InsertResult{Status: domain.StatusSuccess, RecordID: 1, Data: data, SQL: "INSERT"}, nil
}

func (m *mockSchemaStore) GetRecords(_ context.Context, table string, _ domain.Filters) ([]domain.Record, error) {
	m.lastOp, m.lastTable = "get_records", table
	return m.records, m.err
}

func (m *mockSchemaStore) UpdateRecord(_ context.Context, table string, id int64, data domain.Record) (*domain.UpdateResult, error) {
	m.lastOp, m.lastTable = "update_record", table
	if m.err != nil {
		return nil, m.err
	}
	return &domain.UpdateResult{Status: domain.StatusSuccess, RecordID: id, Data: data, SQL: "UPDATE"}, nil
}

func (m *mockSchemaStore) DeleteRecord(_ context.Context, table string, id int64) (*domain.DeleteResult, error) {
	m.lastOp, m.lastTable = "delete_record", table
	if m.err != nil {
		return nil, m.err
	}
	return &domain.DeleteResult{Status: domain.StatusSuccess, RecordID: id, SQL: "DELETE"}, nil
}

func (m *mockSchemaStore) DropTable(_ context.Context, table string) (string, error) {
	m.lastOp, m.lastTable = "drop_table", table
	return m.ddl, m.err
}

func (m *mockSchemaStore) AddColumn(_ context.Context, table, _, _ string) (string, error) {
	m.lastOp, m.lastTable = "add_column", table
	return m.ddl, m.err
}

func (m *mockSchemaStore) DropColumn(_ context.Context, table, _ string) (string, error) {
	m.lastOp, m.lastTable = "drop_column", table
	return m.ddl, m.err
}

func (m *mockSchemaStore) RenameTable(_ context.Context, oldName, _ string) (string, error) {
	m.lastOp, m.lastTable = "rename_table", oldName
	return m.ddl, m.err
}

func (m *mockSchemaStore) RenameColumn(_ context.Context, table, _, _ string) (string, error) {
	m.lastOp, m.lastTable = "rename_column", table
	return m.ddl, m.err
}

func (m *mockSchemaStore) Schema(_ context.Context) (string, error) {
	m.lastOp = "get_schema"
	return m.ddl, m.err
}

func (m *mockSchemaStore) Close() error { return nil }

func TestSchemaService_Ping(t *testing.T) {
	svc := NewSchemaService(&mockSchemaStore{})
	assert.Equal(t, "Pong!", svc.Ping())
}

func TestSchemaService_CreateTable(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates valid spec", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		spec := domain.TableSpec{
			Name:    "users",
			Columns: []domain.Column{{Name: "id", Type: "INTEGER PRIMARY KEY"}},
		}
		result, err := svc.CreateTable(ctx, spec)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, result.Status)
		assert.Equal(t, "create_table", store.lastOp)
	})

	t.Run("rejects bad table name before touching the store", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		spec := domain.TableSpec{
			Name:    "users; DROP TABLE users",
			Columns: []domain.Column{{Name: "id", Type: "INTEGER"}},
		}
		_, err := svc.CreateTable(ctx, spec)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		assert.Empty(t, store.lastOp)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		store := &mockSchemaStore{err: errors.New("disk full")}
		svc := NewSchemaService(store)

		spec := domain.TableSpec{Name: "users", Columns: []domain.Column{{Name: "id", Type: "INTEGER"}}}
		_, err := svc.CreateTable(ctx, spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestSchemaService_InsertRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates valid payload", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		result, err := svc.InsertRecord(ctx, "users", domain.Record{"name": "John Doe", "age": 30})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.RecordID)
		assert.Equal(t, "insert_record", store.lastOp)
	})

	t.Run("rejects bad column key", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		_, err := svc.InsertRecord(ctx, "users", domain.Record{"name) VALUES ('x'); --": "boom"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		assert.Empty(t, store.lastOp)
	})

	t.Run("rejects empty record", func(t *testing.T) {
		svc := NewSchemaService(&mockSchemaStore{})
		_, err := svc.InsertRecord(ctx, "users", domain.Record{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSchemaService_GetRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("nil filters allowed", func(t *testing.T) {
		store := &mockSchemaStore{records: []domain.Record{{"id": int64(1)}}}
		svc := NewSchemaService(store)

		records, err := svc.GetRecords(ctx, "users", nil)

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("rejects bad filter key", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		_, err := svc.GetRecords(ctx, "users", domain.Filters{"age = 1 OR 1=1; --": 30})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		assert.Empty(t, store.lastOp)
	})
}

func TestSchemaService_UpdateRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty update", func(t *testing.T) {
		svc := NewSchemaService(&mockSchemaStore{})
		_, err := svc.UpdateRecord(ctx, "users", 1, domain.Record{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("delegates valid update", func(t *testing.T) {
		store := &mockSchemaStore{}
		svc := NewSchemaService(store)

		result, err := svc.UpdateRecord(ctx, "users", 7, domain.Record{"age": 31})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.RecordID)
		assert.Equal(t, "update_record", store.lastOp)
	})
}

func TestSchemaService_DDLOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("drop_table validates name", func(t *testing.T) {
		store := &mockSchemaStore{ddl: "DROP TABLE IF EXISTS users"}
		svc := NewSchemaService(store)

		_, err := svc.DropTable(ctx, "users; --")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		assert.Empty(t, store.lastOp)

		ddl, err := svc.DropTable(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, "DROP TABLE IF EXISTS users", ddl)
	})

	t.Run("add_column validates both names", func(t *testing.T) {
		store := &mockSchemaStore{ddl: "ALTER TABLE users ADD COLUMN email TEXT"}
		svc := NewSchemaService(store)

		_, err := svc.AddColumn(ctx, "users", "email; --", "TEXT")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

		ddl, err := svc.AddColumn(ctx, "users", "email", "TEXT")
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE users ADD COLUMN email TEXT", ddl)
	})

	t.Run("rename_table validates both names", func(t *testing.T) {
		store := &mockSchemaStore{ddl: "ALTER TABLE users RENAME TO people"}
		svc := NewSchemaService(store)

		_, err := svc.RenameTable(ctx, "users", "select")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

		ddl, err := svc.RenameTable(ctx, "users", "people")
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE users RENAME TO people", ddl)
	})

	t.Run("rename_column validates all three names", func(t *testing.T) {
		store := &mockSchemaStore{ddl: "ALTER TABLE users RENAME COLUMN name TO full_name"}
		svc := NewSchemaService(store)

		for _, args := range [][3]string{
			{"users;", "name", "full_name"},
			{"users", "na me", "full_name"},
			{"users", "name", "where"},
		} {
			_, err := svc.RenameColumn(ctx, args[0], args[1], args[2])
			assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		}

		ddl, err := svc.RenameColumn(ctx, "users", "name", "full_name")
		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE users RENAME COLUMN name TO full_name", ddl)
	})
}

func TestSchemaService_Schema(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through DDL document", func(t *testing.T) {
		store := &mockSchemaStore{ddl: "CREATE TABLE users (id INTEGER)"}
		svc := NewSchemaService(store)

		ddl, err := svc.Schema(ctx)
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE users (id INTEGER)", ddl)
	})

	t.Run("empty database yields empty string", func(t *testing.T) {
		svc := NewSchemaService(&mockSchemaStore{})
		ddl, err := svc.Schema(ctx)
		require.NoError(t, err)
		assert.Empty(t, ddl)
	})
}
