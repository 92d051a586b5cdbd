package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/ts-perf/internal/experiment"
	"github.com/DjordjeVuckovic/ts-perf/pkg/schema"
	"github.com/spf13/cobra"
)

const schemaIDBase = "https://schemas.ts-perf.dev"

func newSchemaCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema of the experiment file format",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := experimentSchema()
			if err != nil {
				return err
			}
			if outputDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			path := filepath.Join(outputDir, "experiment-v1.json")
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write the schema into (stdout when empty)")
	return cmd
}

func experimentSchema() (string, error) {
	g := schema.NewGenerator(schema.WithTagKey("yaml"), schema.WithIDBase(schemaIDBase))
	return g.GenerateJSONSchema(experiment.Spec{})
}
