package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/biogrid/internal/model"
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

const healthyManifest = `
monitor "healthy-monitor" {
	category = "observability"
	entrypoint { handler = "Healthy" }
	input "x" { type = state }
	output "y" { type = state }
}
`

func TestLoadManifests_WalksNestedDirectories(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{
		"a/manifest.hcl":     healthyManifest,
		"b/deep/monitor.hcl": `
monitor "deep-monitor" {
	category = "observability"
	entrypoint { handler = "Deep" }
	input "x" { type = state }
	output "y" { type = state }
}
`,
		"b/deep/notes.txt":   "ignored, wrong extension",
		"b/deep/README.md":   "also ignored",
	})

	r := New()
	diags, err := r.LoadManifests(context.Background(), rootDir)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, r.Manifests(), 2)
}

func TestLoadManifests_UnparseableFileBecomesDiagnostic(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{
		"good/manifest.hcl":   healthyManifest,
		"broken/manifest.hcl": `monitor "broken-monitor" { category = `,
	})

	r := New()
	diags, err := r.LoadManifests(context.Background(), rootDir)
	require.NoError(t, err, "a syntax-broken file must not abort the load")

	require.Len(t, diags, 1)
	require.Equal(t, model.SeverityError, diags[0].Severity)
	require.Empty(t, diags[0].Manifest, "file-level findings carry no manifest identifier")
	require.Contains(t, diags[0].Field, filepath.Join("broken", "manifest.hcl"))
	require.Contains(t, diags[0].Message, "unparseable manifest file")

	require.Len(t, r.Manifests(), 1)
	require.Equal(t, "healthy-monitor", r.Manifests()[0].Name)
}

func TestLoadManifests_UnreadableRootIsFatal(t *testing.T) {
	t.Parallel()

	r := New()
	diags, err := r.LoadManifests(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))

	require.Nil(t, diags)
	var derr *DiscoveryError
	require.ErrorAs(t, err, &derr)
	require.Contains(t, derr.Error(), "manifest discovery failed")
}

func TestLoadManifests_EmptyTreeIsClean(t *testing.T) {
	t.Parallel()

	r := New()
	diags, err := r.LoadManifests(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Empty(t, r.Manifests())
}

func TestLoadManifests_DiscoveryOrderIsSorted(t *testing.T) {
	t.Parallel()

	rootDir := writeTree(t, map[string]string{
		"zz/manifest.hcl": `
monitor "zz-monitor" {
	category = "observability"
	entrypoint { handler = "Z" }
	input "x" { type = state }
	output "y" { type = state }
}
`,
		"aa/manifest.hcl": `
monitor "aa-monitor" {
	category = "observability"
	entrypoint { handler = "A" }
	input "x" { type = state }
	output "y" { type = state }
}
`,
	})

	r := New()
	_, err := r.LoadManifests(context.Background(), rootDir)
	require.NoError(t, err)
	require.Len(t, r.Manifests(), 2)
	require.Equal(t, "aa-monitor", r.Manifests()[0].Name)
	require.Equal(t, "zz-monitor", r.Manifests()[1].Name)
}
