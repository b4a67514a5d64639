package creator

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Taifin/FSCreator/internal/tree"
)

// Messages recorded for structural failures.
const (
	msgDestBlank   = "destination is blank"
	msgDestInvalid = "destination is not a valid directory name"
	msgDestNotDir  = "destination does not correspond to a directory"
	msgNameBlank   = "entry name is blank"
	msgNameInvalid = "entry name is not a valid path segment"
	msgFileOnDisk  = "file already exists on disk"
	msgDirOnDisk   = "directory already exists on disk"
	msgDupSibling  = "already declared in parent directory"
	msgCircular    = "circular dependency detected"
)

// validate checks the destination and then walks the tree in pre-order,
// recording structural issues and enqueuing creatable entries. It never
// mutates the filesystem.
func (c *Creator) validate(root tree.Entry, destination string, r *run) {
	switch {
	case strings.TrimSpace(destination) == "":
		r.ledger.Record(root, msgDestBlank)
		return
	case !c.fs.ValidPath(destination):
		r.ledger.Record(root, msgDestInvalid)
		return
	case !c.fs.IsDirectory(destination):
		r.ledger.Record(root, msgDestNotDir)
		return
	}

	c.validateEntry(root, destination, make(map[string]struct{}), r)
	c.log.Debug("validation finished",
		zap.Int("issues", r.ledger.Len()),
		zap.Int("queued", len(r.queue)))
}

// validateEntry validates one entry against its parent path and the set
// of sibling names already claimed under that parent.
func (c *Creator) validateEntry(e tree.Entry, parent string, siblings map[string]struct{}, r *run) {
	name := e.EntryName()
	if strings.TrimSpace(name) == "" {
		// Children of a blank-named entry are unreachable by any path,
		// so descent stops here.
		r.ledger.Record(e, msgNameBlank)
		return
	}
	if !c.fs.ValidName(name) {
		r.ledger.Record(e, msgNameInvalid)
		return
	}

	path := filepath.Join(parent, name)

	switch entry := e.(type) {
	case *tree.File:
		// The on-disk and sibling checks are independent; both may fire
		// for the same entry.
		clean := true
		if c.fs.Exists(path) {
			r.ledger.Record(e, msgFileOnDisk)
			clean = false
		}
		if _, dup := siblings[name]; dup {
			r.ledger.Record(e, msgDupSibling)
			clean = false
		}
		if clean {
			siblings[name] = struct{}{}
			r.enqueue(entry, path)
		}

	case *tree.Directory:
		// Visited tracking is by reference, not by value: the same
		// *Directory reachable twice is a cycle, a structurally equal
		// copy elsewhere is not.
		if _, seen := r.visited[entry]; seen {
			r.ledger.Record(e, msgCircular)
			return
		}
		r.visited[entry] = struct{}{}

		clean := true
		if c.fs.Exists(path) {
			r.ledger.Record(e, msgDirOnDisk)
			clean = false
		}
		if _, dup := siblings[name]; dup {
			r.ledger.Record(e, msgDupSibling)
			clean = false
		}
		siblings[name] = struct{}{}
		if clean {
			r.enqueue(entry, path)
		}

		// Sibling uniqueness does not cross directory boundaries.
		childSiblings := make(map[string]struct{})
		for _, child := range entry.Children {
			c.validateEntry(child, path, childSiblings, r)
		}
	}
}
