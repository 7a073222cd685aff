package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/behaviorgo/internal/app"
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

// HarnessResult holds the outcomes of an end-to-end export run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	App        *app.App
	OutputPath string
	// Document is the exported XML, empty when the run failed before export.
	Document string
}

// RunExportTest writes the given definition files into a temp directory,
// runs the full load-compose-export pipeline against the "defs" subdirectory
// and returns the captured logs and exported document. File names are
// relative to the temp root, e.g. "defs/main.hcl".
func RunExportTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunExportTestWithPath(t, files, "defs")
}

// RunExportTestWithPath is RunExportTest with an explicit definition path,
// relative to the temp root. Use it to point the app at a single file.
func RunExportTestWithPath(t *testing.T, files map[string]string, definitionPath string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "defs"), 0755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		DefinitionPath: filepath.Join(tmpDir, definitionPath),
		OutputPath:     filepath.Join(tmpDir, "out.xml"),
		LogLevel:       "debug",
		LogFormat:      "text",
	}

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{OutputPath: appConfig.OutputPath}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		loader := app.SelectLoader(appConfig.DefinitionPath)
		testApp = app.NewApp(logBuffer, appConfig, loader)
	}()

	if panicErr != nil {
		result.LogOutput = logBuffer.String()
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		return result
	}

	result.App = testApp
	result.Err = testApp.Run(context.Background(), appConfig)
	result.LogOutput = logBuffer.String()

	if data, err := os.ReadFile(appConfig.OutputPath); err == nil {
		result.Document = string(data)
	}
	return result
}
