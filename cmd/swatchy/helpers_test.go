package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

// setupHome points HOME at a fresh directory so no user config is read.
func setupHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()
	path := filepath.Join(home, ".swatchy", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func useMemoryClipboard(t *testing.T) *clipboard.Memory {
	t.Helper()
	mem := clipboard.NewMemory()
	original := newClipboard
	newClipboard = func() clipboard.Writer { return mem }
	t.Cleanup(func() { newClipboard = original })
	return mem
}
