package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ExportsBehavior(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	definition := `
behavior "Door" {
  start_state = "Idle"
}

state "Idle" {
  animation = "animations\\Idle.hkx"
  looping   = true
}

state "Open" {
  animation = "animations\\Open.hkx"
}

transition {
  from  = "Idle"
  to    = "Open"
  event = "DoorOpen"
}
`
	tempDir := t.TempDir()
	defPath := filepath.Join(tempDir, "door.hcl")
	require.NoError(t, os.WriteFile(defPath, []byte(definition), 0600))
	outPath := filepath.Join(tempDir, "Door.xml")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-d", defPath, "-o", outPath, "-log-level", "error"})

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	doc := string(data)
	require.True(t, strings.HasPrefix(doc, "<?xml version='1.0' encoding='ascii'?>"))
	require.Contains(t, doc, `toplevelobject="#0051"`)
	require.Contains(t, doc, `<hkparam name="name">Door.hkb</hkparam>`)
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL syntax error is guaranteed to trip the startup panic inside
	// app.NewApp().
	invalidHCL := `
		state "Idle" {
			animation =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
