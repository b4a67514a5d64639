// Package fsops provides the filesystem primitives used by the creator.
//
// All filesystem mutations in fscreator go through the FS interface, which
// wraps the handful of OS operations the engine needs along with syntactic
// validity checks for paths and path segments.
//
// Key features:
//   - Exclusive file creation (never truncates an existing file)
//   - Every failure classified into exactly one error kind
//   - Testable via the FS interface
package fsops

import (
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
// All filesystem mutations in fscreator must go through this interface.
type FS interface {
	// Exists reports whether anything exists at path.
	Exists(path string) bool

	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool

	// CreateFile creates an empty file at path. It fails with
	// ErrAlreadyExists if anything already exists there.
	CreateFile(path string) error

	// CreateDirectory creates a directory at path. The parent must
	// already exist.
	CreateDirectory(path string) error

	// WriteBytes writes data to an existing file at path.
	WriteBytes(path string, data []byte) error

	// ValidPath reports whether s can be interpreted as a filesystem
	// path on the host. It accepts any string and never fails.
	ValidPath(s string) bool

	// ValidName reports whether s can be interpreted as a single
	// path segment on the host.
	ValidName(s string) bool
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Exists reports whether anything exists at path.
func (fs *RealFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func (fs *RealFS) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateFile creates an empty file at path, failing if it already exists.
func (fs *RealFS) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return classify(err)
	}
	return f.Close()
}

// CreateDirectory creates a directory at path. The parent must exist.
func (fs *RealFS) CreateDirectory(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return classify(err)
	}
	return nil
}

// WriteBytes writes data to the file at path, replacing its contents.
func (fs *RealFS) WriteBytes(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return classify(err)
	}
	return nil
}

// ValidPath reports whether s can be interpreted as a filesystem path.
// The only strings the OS layer rejects outright are those containing a
// NUL byte; everything else is left to the existence checks.
func (fs *RealFS) ValidPath(s string) bool {
	return !strings.ContainsRune(s, 0)
}

// ValidName reports whether s is a usable single path segment.
// Segments must not contain separators, NUL bytes, or collapse to the
// current or parent directory.
func (fs *RealFS) ValidName(s string) bool {
	if strings.ContainsRune(s, 0) {
		return false
	}
	if strings.Contains(s, string(filepath.Separator)) || strings.Contains(s, "/") || strings.Contains(s, "\\") {
		return false
	}
	if s == "." || s == ".." {
		return false
	}
	return true
}
