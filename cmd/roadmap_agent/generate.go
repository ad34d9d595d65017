package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/profile"
	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/roadmap"
	"github.com/jonathan/career-roadmap/internal/schemas"
	"github.com/jonathan/career-roadmap/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap locally",
	Long: `Analyzes skill gaps between the profile and the target role and assembles a four-phase roadmap.

The JSON document is checked against the roadmap schema before it is written. Use --format outline for a plain-text view.`,
	RunE: runGenerate,
}

var (
	generateReq    requestFlags
	generateOut    string
	generateFormat string
)

func init() {
	generateReq.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "json", "Output format: json or outline")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	req, err := generateReq.build(cmd)
	if err != nil {
		return err
	}

	doc, err := generateDocument(req)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := report.NewPrinter(os.Stderr)
		printer.PrintGaps(doc.Gaps, doc.Summary)
		printer.PrintPhases(doc.Response())
	}

	switch generateFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), generateOut, doc)
	case "outline":
		return writeText(cmd.OutOrStdout(), generateOut, report.Outline(doc.Response()))
	default:
		return fmt.Errorf("unknown format %q (want json or outline)", generateFormat)
	}
}

// generateDocument runs the engine and checks the result against the
// roadmap schema.
func generateDocument(req types.GenerateRequest) (roadmap.Document, error) {
	cur := profile.FromInput(req.Profile)
	res := roadmap.New(nil).Generate(cur, req.Target)
	doc := roadmap.NewDocument(uuid.NewString(), req.Target, res)

	if err := schemas.ValidateValue(schemas.Roadmap, doc); err != nil {
		return roadmap.Document{}, fmt.Errorf("generated roadmap failed schema validation: %w", err)
	}
	return doc, nil
}
