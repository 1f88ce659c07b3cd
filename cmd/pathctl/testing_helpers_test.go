package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	formatName = ""
	logLevel = ""
	inputEncoding = ""
	setStrict = false
	rmTree = false
	treeDepth = 0
	treeValues = false
}

// tempDoc returns a path for a document named name inside a fresh
// temporary directory. The file is not created.
func tempDoc(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// writeDoc writes content to a new document named name and returns its path.
func writeDoc(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := tempDoc(t, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// mustRun runs fn with captured stdout and fails the test on error.
func mustRun(t *testing.T, fn func() error) string {
	t.Helper()
	out, err := captureOutput(t, fn)
	require.NoError(t, err)
	return out
}

// decodeJSON unmarshals command output into a generic value.
func decodeJSON(t *testing.T, output string) any {
	t.Helper()
	var result any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "invalid JSON output: %s", output)
	return result
}
