// Package testutil provides the shared harness for integration-style tests:
// a files map is materialized into a temp manifest tree, one phase runs over
// it, and the report plus captured logs come back for assertions.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/biogrid/internal/app"
	"github.com/vk/biogrid/internal/registry"
	"github.com/vk/biogrid/internal/report"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Report *report.Report
	Logs   string
	Err    error
}

// RunValidate materializes the files map into a temp tree and runs the
// schema validation phase over it.
func RunValidate(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return runPhase(t, files, (*app.App).ValidateManifests, modules...)
}

// RunCheck materializes the files map into a temp tree and runs the
// entrypoint checking phase over it.
func RunCheck(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return runPhase(t, files, (*app.App).CheckEntrypoints, modules...)
}

func runPhase(t *testing.T, files map[string]string, phase func(*app.App, context.Context) (*report.Report, error), modules ...registry.Module) *HarnessResult {
	t.Helper()

	rootDir := WriteTree(t, files)

	config, err := app.NewConfig(app.Config{
		ManifestsPath: rootDir,
		LogLevel:      "debug",
		LogFormat:     "text",
		Workers:       4,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}

	// Tests that pass no modules get an empty registry, not the bundled
	// core modules; manifests under test should only resolve against
	// handlers the test registered itself.
	if len(modules) == 0 {
		modules = []registry.Module{&NoopModule{}}
	}

	testApp := app.NewApp(outBuffer, logBuffer, config, modules...)
	rep, runErr := phase(testApp, context.Background())

	if os.Getenv("BIOGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Report: rep,
		Logs:   logBuffer.String(),
		Err:    runErr,
	}
}

// WriteTree writes every entry of the files map under a fresh temp root.
// Relative paths in keys create the needed subdirectories.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	rootDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(rootDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return rootDir
}
