package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Taifin/FSCreator/internal/creator"
	"github.com/Taifin/FSCreator/internal/fsops"
	"github.com/Taifin/FSCreator/internal/logging"
)

// newCreator wires a creator over the real filesystem with logging
// discarded, the way the CLI does minus the output.
func newCreator() *creator.Creator {
	return creator.New(fsops.NewRealFS(), logging.Nop())
}

// readFile fails the test if path cannot be read.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// exists reports whether anything is present at path.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// listDir returns the names of dir's direct children, for asserting a
// destination was left untouched.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, filepath.Join(dir, e.Name()))
	}
	return names
}
