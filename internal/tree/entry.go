// Package tree defines the declared file hierarchy that the creator
// materializes onto a real filesystem.
//
// A tree is built once by the caller (directly or from a manifest) and is
// read-only for the duration of a create call. Directory identity matters:
// the same *Directory reachable twice in one tree is a circular reference,
// while two independently constructed but structurally identical
// directories are not.
package tree

// Entry is a node in the declared hierarchy: either a *File or a *Directory.
type Entry interface {
	// EntryName returns the declared name of this entry, a single
	// path segment relative to its parent.
	EntryName() string

	entry()
}

// File is a leaf entry with literal content.
type File struct {
	Name    string
	Content string
}

// Directory is an entry holding an ordered list of children.
// Child order is meaningful: it is both the sibling declaration order
// and the creation order.
type Directory struct {
	Name     string
	Children []Entry
}

// NewFile returns a File entry with the given name and content.
func NewFile(name, content string) *File {
	return &File{Name: name, Content: content}
}

// NewDir returns a Directory entry with the given children, in order.
func NewDir(name string, children ...Entry) *Directory {
	return &Directory{Name: name, Children: children}
}

// EntryName returns the file's declared name.
func (f *File) EntryName() string { return f.Name }

// EntryName returns the directory's declared name.
func (d *Directory) EntryName() string { return d.Name }

func (f *File) entry()      {}
func (d *Directory) entry() {}
