package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	domainmocks "github.com/softwarewrighter/sw-checklist/internal/domain/mocks"
)

// withMockWorkflow swaps the package workflow for a mock and keeps logs
// out of the working directory.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	original := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = original })

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "test.log"))

	return mockWorkflow
}

func executeCommand(args ...string) (string, error) {
	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newViewCmd(), newInitCmd(), newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
