package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/profile"
	"github.com/jonathan/career-roadmap/internal/remote"
	"github.com/jonathan/career-roadmap/internal/roadmap"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the generation prompt for a profile and target",
	Long:  "Renders the instruction block that an external generation service receives. With --llm the learning preferences sent to Gemini are appended.",
	RunE:  runPrompt,
}

var (
	promptReq requestFlags
	promptOut string
	promptLLM bool
)

func init() {
	promptReq.register(promptCmd)
	promptCmd.Flags().StringVarP(&promptOut, "out", "o", "", "Output file (default stdout)")
	promptCmd.Flags().BoolVar(&promptLLM, "llm", false, "Print the prompt as sent to Gemini")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	req, err := promptReq.build(cmd)
	if err != nil {
		return err
	}

	var text string
	if promptLLM {
		text = remote.LLMPrompt(remote.RequestFrom(req))
	} else {
		text = roadmap.GeneratePrompt(profile.FromInput(req.Profile), req.Target)
	}
	return writeText(cmd.OutOrStdout(), promptOut, text+"\n")
}
