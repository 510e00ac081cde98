package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemagen-labs/schemagen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/schemagen-labs/schemagen-cli/internal/core/domain"
	"github.com/schemagen-labs/schemagen-cli/internal/core/services"
)

func TestSchemaCmd_PrintsDDL(t *testing.T) {
	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.CreateTable(context.Background(), domain.TableSpec{
		Name:    "users",
		Columns: []domain.Column{{Name: "id", Type: "INTEGER PRIMARY KEY"}},
	})
	require.NoError(t, err)

	// Swap in the test-backed service
	originalService := schemaService
	schemaService = services.NewSchemaService(store)
	defer func() { schemaService = originalService }()

	buf := new(bytes.Buffer)
	cmd := schemaCmd
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())

	err = runSchema(cmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "users")
}

func TestSchemaCmd_EmptyDatabasePrintsNothing(t *testing.T) {
	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	originalService := schemaService
	schemaService = services.NewSchemaService(store)
	defer func() { schemaService = originalService }()

	buf := new(bytes.Buffer)
	cmd := schemaCmd
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())

	err = runSchema(cmd, nil)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
