// Package manifest loads declarative YAML descriptions of entry trees.
//
// A manifest names a destination directory and a list of top-level
// entries, each either a file with inline content or a directory with
// nested children:
//
//	destination: ./out
//	entries:
//	  - file: README.md
//	    content: |
//	      hello
//	  - dir: src
//	    children:
//	      - file: main.go
//	        content: package main
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Taifin/FSCreator/internal/tree"
)

// ErrManifestNotFound is returned when the manifest file does not exist.
// Callers can check for this with errors.Is(err, manifest.ErrManifestNotFound).
var ErrManifestNotFound = errors.New("manifest file not found")

// Manifest is a parsed tree declaration.
type Manifest struct {
	Destination string `yaml:"destination,omitempty"`
	Entries     []Node `yaml:"entries"`
}

// Node is one declared entry. Exactly one of File or Dir must be set.
type Node struct {
	File     string `yaml:"file,omitempty"`
	Dir      string `yaml:"dir,omitempty"`
	Content  string `yaml:"content,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}
	return Parse(data)
}

// Parse parses manifest data and checks its shape. Shape errors (a node
// that is both file and dir, a file with children) are reported here,
// before any tree is built; name and collision problems are left to the
// creator's validator.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Entries) == 0 {
		return nil, errors.New("manifest declares no entries")
	}
	for i := range m.Entries {
		if err := m.Entries[i].check(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return &m, nil
}

// Trees converts the declared entries into creator input, preserving
// declaration order.
func (m *Manifest) Trees() []tree.Entry {
	entries := make([]tree.Entry, 0, len(m.Entries))
	for i := range m.Entries {
		entries = append(entries, m.Entries[i].toEntry())
	}
	return entries
}

func (n *Node) check() error {
	switch {
	case n.File != "" && n.Dir != "":
		return fmt.Errorf("node %q declares both file and dir", n.File)
	case n.File == "" && n.Dir == "":
		return errors.New("node declares neither file nor dir")
	case n.File != "" && len(n.Children) > 0:
		return fmt.Errorf("file %q cannot have children", n.File)
	case n.Dir != "" && n.Content != "":
		return fmt.Errorf("dir %q cannot have content", n.Dir)
	}
	for i := range n.Children {
		if err := n.Children[i].check(); err != nil {
			return fmt.Errorf("under %q: entry %d: %w", n.Dir, i, err)
		}
	}
	return nil
}

// toEntry assumes check passed.
func (n *Node) toEntry() tree.Entry {
	if n.File != "" {
		return tree.NewFile(n.File, n.Content)
	}
	children := make([]tree.Entry, 0, len(n.Children))
	for i := range n.Children {
		children = append(children, n.Children[i].toEntry())
	}
	return &tree.Directory{Name: n.Dir, Children: children}
}
