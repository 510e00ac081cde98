// Package cli wires the cobra command tree for the schemagen binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemagen-labs/schemagen-cli/internal/adapters/driven/config/file"
	"github.com/schemagen-labs/schemagen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/schemagen-labs/schemagen-cli/internal/core/ports/driving"
	"github.com/schemagen-labs/schemagen-cli/internal/core/services"
	"github.com/schemagen-labs/schemagen-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagDataDir string

	schemaStore   *sqlite.Store
	schemaService driving.SchemaService
)

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Schema and data mutation over an embedded SQLite database",
	Long: `SchemaGen exposes schema mutation (create/drop/alter/rename) and data
mutation (insert/update/delete/select) against a single SQLite database file,
primarily through a Model Context Protocol server for AI assistants.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the database file (default ~/.schemagen/data)")
}

// initServices builds the store and service used by the subcommands.
// The version command works without them.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if cmd.Name() == "version" {
		return nil
	}

	dataDir := flagDataDir
	if dataDir == "" {
		cfg, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		dataDir = cfg.GetString(file.KeyDataDir)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening schema store: %w", err)
	}
	logger.Info("database at %s", store.Path())

	schemaStore = store
	schemaService = services.NewSchemaService(store)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if schemaStore != nil {
		schemaStore.Close() //nolint:errcheck
	}
	if err != nil {
		os.Exit(1)
	}
}
