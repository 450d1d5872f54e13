package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func stubTerminal(t *testing.T, interactive bool, confirm func(string) (bool, error)) {
	t.Helper()

	originalTerminal, originalConfirm := stdinIsTerminal, confirmOverwrite
	stdinIsTerminal = func() bool { return interactive }
	confirmOverwrite = confirm

	t.Cleanup(func() {
		stdinIsTerminal, confirmOverwrite = originalTerminal, originalConfirm
	})
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	withMockWorkflow(t)
	tempDir := chdirTemp(t)

	output, err := executeCommand("init")
	require.NoError(t, err)
	assert.Contains(t, output, "Created")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "parallel")
	assert.Contains(t, string(contents), "timeout")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	withMockWorkflow(t)
	tempDir := chdirTemp(t)
	stubTerminal(t, false, nil)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeCommand("init")
	require.ErrorContains(t, err, "--force")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	withMockWorkflow(t)
	tempDir := chdirTemp(t)
	stubTerminal(t, false, nil)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeCommand("init", "--force")
	require.NoError(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.NotContains(t, string(contents), "existing")
}

func TestInitCmd_InteractiveConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		confirm     func(string) (bool, error)
		wantErr     string
		wantReplace bool
	}{
		{"accepted", func(string) (bool, error) { return true, nil }, "", true},
		{"declined", func(string) (bool, error) { return false, nil }, "left unchanged", false},
		{"interrupted", func(string) (bool, error) { return false, errors.New("^C") }, "^C", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMockWorkflow(t)
			tempDir := chdirTemp(t)
			stubTerminal(t, true, tt.confirm)

			targetPath := filepath.Join(tempDir, configFileName)
			require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

			_, err := executeCommand("init")
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			contents, err := os.ReadFile(targetPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReplace, string(contents) != "existing: true\n")
		})
	}
}
