package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o755))
}

func names(results []m.CheckResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}

	return out
}

func find(t *testing.T, results []m.CheckResult, name string) m.CheckResult {
	t.Helper()

	for _, r := range results {
		if r.Name == name {
			return r
		}
	}

	require.Failf(t, "result not found", "no result named %q in %v", name, names(results))

	return m.CheckResult{}
}
