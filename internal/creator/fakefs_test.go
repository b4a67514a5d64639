package creator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Taifin/FSCreator/internal/fsops"
)

// fakeFS is an in-memory implementation of fsops.FS for testing. It
// records every mutation attempt so tests can assert both ordering and
// the absence of side effects.
type fakeFS struct {
	files map[string]string
	dirs  map[string]bool

	failCreateFile map[string]error
	failCreateDir  map[string]error
	failWrite      map[string]error

	// mutations records every mutating call in order, e.g. "mkdir /d/a".
	mutations []string
}

func newFakeFS(dirs ...string) *fakeFS {
	fs := &fakeFS{
		files:          make(map[string]string),
		dirs:           make(map[string]bool),
		failCreateFile: make(map[string]error),
		failCreateDir:  make(map[string]error),
		failWrite:      make(map[string]error),
	}
	for _, d := range dirs {
		fs.dirs[d] = true
	}
	return fs
}

func (f *fakeFS) addFile(path, content string) {
	f.files[path] = content
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok || f.dirs[path]
}

func (f *fakeFS) IsDirectory(path string) bool {
	return f.dirs[path]
}

func (f *fakeFS) CreateFile(path string) error {
	f.mutations = append(f.mutations, "create "+path)
	if err, ok := f.failCreateFile[path]; ok {
		return err
	}
	if f.Exists(path) {
		return fmt.Errorf("%w: %s", fsops.ErrAlreadyExists, path)
	}
	f.files[path] = ""
	return nil
}

func (f *fakeFS) CreateDirectory(path string) error {
	f.mutations = append(f.mutations, "mkdir "+path)
	if err, ok := f.failCreateDir[path]; ok {
		return err
	}
	if f.Exists(path) {
		return fmt.Errorf("%w: %s", fsops.ErrAlreadyExists, path)
	}
	f.dirs[path] = true
	return nil
}

func (f *fakeFS) WriteBytes(path string, data []byte) error {
	f.mutations = append(f.mutations, "write "+path)
	if err, ok := f.failWrite[path]; ok {
		return err
	}
	f.files[path] = string(data)
	return nil
}

func (f *fakeFS) ValidPath(s string) bool {
	return !strings.ContainsRune(s, 0)
}

func (f *fakeFS) ValidName(s string) bool {
	if strings.ContainsRune(s, 0) || s == "." || s == ".." {
		return false
	}
	return !strings.Contains(s, string(filepath.Separator)) && !strings.Contains(s, "/") && !strings.Contains(s, "\\")
}
