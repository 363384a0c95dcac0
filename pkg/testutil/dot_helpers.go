package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDot represents a test dot with its directory structure
type TestDot struct {
	Root string // Dotfiles root directory
	Name string // Dot name
	Dir  string // Full path to dot directory
}

// SetupRoot creates an empty dotfiles root under a temp directory
func SetupRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "dotfiles")
	require.NoError(t, os.MkdirAll(root, 0755))
	return root
}

// SetupTestDot creates a dot directory under the given dotfiles root
func SetupTestDot(t *testing.T, root, dotName string) *TestDot {
	t.Helper()

	dotDir := filepath.Join(root, dotName)
	require.NoError(t, os.MkdirAll(dotDir, 0755))

	return &TestDot{
		Root: root,
		Name: dotName,
		Dir:  dotDir,
	}
}

// AddFile adds a regular file to the test dot
func (td *TestDot) AddFile(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(td.Dir, filename)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

// AddScript adds an executable script to the test dot
func (td *TestDot) AddScript(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(td.Dir, filename)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0755))
	return filePath
}

// AddSetupScript adds a setup.sh that exits with the given status
func (td *TestDot) AddSetupScript(t *testing.T, exitCode int) string {
	t.Helper()
	return td.AddScript(t, "setup.sh", ExitingScript(exitCode))
}

// AddInstallScript adds an install.sh that exits with the given status
func (td *TestDot) AddInstallScript(t *testing.T, exitCode int) string {
	t.Helper()
	return td.AddScript(t, "install.sh", ExitingScript(exitCode))
}

// ExitingScript returns a shell script body that exits with the given status
func ExitingScript(exitCode int) string {
	return fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode)
}

// TouchScript returns a shell script body that creates the given file and
// exits 0. Tests use the file's existence to prove the script ran.
func TouchScript(markerPath string) string {
	return fmt.Sprintf("#!/bin/sh\ntouch '%s'\nexit 0\n", markerPath)
}
