package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	rootDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(rootDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return rootDir
}

const cleanManifest = `
monitor "observability-state-comparison-monitor" {
	category = "observability"

	entrypoint {
		handler = "StateComparisonMonitor"
	}

	input "state_a" { type = state }
	input "state_b" { type = state }
	input "state_c" { type = state }
	input "state_d" { type = state }

	output "comparison_state" { type = state }
}
`

func TestRun_ValidateCleanTree(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{"comparison/manifest.hcl": cleanManifest})

	var out, logs strings.Builder
	code, err := run([]string{"validate-manifests", "--manifests", rootDir}, &out, &logs)

	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "no diagnostics")
}

func TestRun_ValidateFailingTree(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{
		"a/manifest.hcl": cleanManifest,
		"b/manifest.hcl": cleanManifest,
	})

	var out, logs strings.Builder
	code, err := run([]string{"validate-manifests", "--manifests", rootDir}, &out, &logs)

	require.Error(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "duplicate identifier")
	require.Contains(t, out.String(), "1 error(s)")
}

func TestRun_CheckEntrypointsAgainstBundledModules(t *testing.T) {
	t.Parallel()

	// The bundled manifests must always agree with their compiled handlers.
	var out, logs strings.Builder
	code, err := run([]string{"check-entrypoints", "--manifests", "../../modules"}, &out, &logs)

	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "no diagnostics")
}

func TestRun_CheckUnreachableEntrypoint(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{
		"orphan/manifest.hcl": `
			monitor "orphan-monitor" {
				category = "observability"
				entrypoint { handler = "NobodyHome" }
				input "x" { type = state }
				output "y" { type = state }
			}
		`,
	})

	var out, logs strings.Builder
	code, err := run([]string{"check-entrypoints", "--manifests", rootDir}, &out, &logs)

	require.Error(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "entrypoint unreachable")
}

func TestRun_InvalidLogLevelIsConfigError(t *testing.T) {
	t.Parallel()

	var out, logs strings.Builder
	code, err := run([]string{"validate-manifests", "--log-level", "loud"}, &out, &logs)

	require.Error(t, err)
	require.Equal(t, 2, code)
	require.Contains(t, err.Error(), "invalid log-level")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	var out, logs strings.Builder
	code, err := run([]string{"frobnicate"}, &out, &logs)

	require.Error(t, err)
	require.Equal(t, 1, code)
}
