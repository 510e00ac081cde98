package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the database schema as DDL",
	Long: `Reconstructs the DDL for every table in the database, one statement
per table, separated by ";\n". Prints nothing for an empty database.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	ddl, err := schemaService.Schema(cmd.Context())
	if err != nil {
		return err
	}

	if ddl != "" {
		fmt.Fprintln(cmd.OutOrStdout(), ddl)
	}
	return nil
}
