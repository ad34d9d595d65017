package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-roadmap/internal/types"
)

// getBinaryPath returns the path to a built roadmap_agent binary, skipping
// the test when none exists.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "roadmap_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/roadmap_agent ./cmd/roadmap_agent'", binaryPath)
	}
	return binaryPath
}

// parseRequestFlags registers request flags on a throwaway command, parses
// args and builds the request.
func parseRequestFlags(t *testing.T, args ...string) (types.GenerateRequest, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var f requestFlags
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return f.build(cmd)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func seniorFrontendRequest() types.GenerateRequest {
	return types.GenerateRequest{
		Profile: types.ProfileInput{
			CurrentJob: "Frontend Developer",
			Experience: "3 years",
			Skills: []types.ProfileSkill{
				{Name: "JavaScript", Level: "Advanced"},
				{Name: "React", Level: "Intermediate"},
				{Name: "CSS", Level: "Advanced"},
			},
		},
		Target: types.TargetRole{Title: "Senior Frontend Engineer", Level: types.LevelSenior, Domain: types.DomainFrontend},
	}
}
