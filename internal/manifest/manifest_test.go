package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taifin/FSCreator/internal/tree"
)

func TestParse_FullManifest(t *testing.T) {
	data := []byte(`
destination: ./out
entries:
  - file: README.md
    content: |
      hello
  - dir: src
    children:
      - file: main.go
        content: package main
      - dir: internal
`)

	m, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "./out", m.Destination)
	entries := m.Trees()
	require.Len(t, entries, 2)

	readme, ok := entries[0].(*tree.File)
	require.True(t, ok)
	assert.Equal(t, "README.md", readme.Name)
	assert.Equal(t, "hello\n", readme.Content)

	src, ok := entries[1].(*tree.Directory)
	require.True(t, ok)
	assert.Equal(t, "src", src.Name)
	require.Len(t, src.Children, 2)
	assert.Equal(t, "main.go", src.Children[0].EntryName())
	assert.Equal(t, "internal", src.Children[1].EntryName())
}

func TestParse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "node is both file and dir",
			data: "entries:\n  - file: a\n    dir: b\n",
		},
		{
			name: "node is neither file nor dir",
			data: "entries:\n  - content: x\n",
		},
		{
			name: "file with children",
			data: "entries:\n  - file: a\n    children:\n      - file: b\n",
		},
		{
			name: "dir with content",
			data: "entries:\n  - dir: a\n    content: x\n",
		},
		{
			name: "nested shape error",
			data: "entries:\n  - dir: a\n    children:\n      - content: x\n",
		},
		{
			name: "no entries",
			data: "destination: ./out\n",
		},
		{
			name: "not yaml",
			data: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fstree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - file: a\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Entries, 1)
}
