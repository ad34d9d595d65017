package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a JSON document against a schema",
	Long: `Checks FILE against one of the embedded schemas (request, roadmap, response) or against a schema file given by path.

Exits non-zero and lists every violation when the document is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateSchema string

// embeddedSchemas maps --schema shorthands to embedded schema names.
var embeddedSchemas = map[string]string{
	"request":  schemas.Request,
	"roadmap":  schemas.Roadmap,
	"response": schemas.RoadmapResponse,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "roadmap", "request, roadmap, response, or a path to a schema file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := validateFile(validateSchema, args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
	return nil
}

func validateFile(schema, path string) error {
	name, ok := embeddedSchemas[schema]
	if !ok {
		return schemas.ValidateJSON(schema, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return schemas.Validate(name, data)
}
