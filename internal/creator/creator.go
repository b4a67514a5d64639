package creator

import (
	"go.uber.org/zap"

	"github.com/Taifin/FSCreator/internal/fsops"
	"github.com/Taifin/FSCreator/internal/tree"
)

// Creator orchestrates validation and creation of declared entry trees.
// It holds no per-call state; a single Creator may be used from multiple
// goroutines as long as the calls target disjoint destinations.
type Creator struct {
	fs  fsops.FS
	log *zap.Logger
}

// New creates a Creator over the given filesystem. A nil logger is
// replaced with a no-op logger.
func New(fs fsops.FS, log *zap.Logger) *Creator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Creator{fs: fs, log: log}
}

// Create is a convenience over New with the real filesystem.
func Create(root tree.Entry, destination string) []Issue {
	return New(fsops.NewRealFS(), nil).Create(root, destination)
}

// Create validates root against destination and, only if validation
// found nothing, materializes the tree. The returned issues cover both
// phases, in the order they were detected; an empty result means the
// whole tree was created. Validation failures guarantee zero filesystem
// mutation.
func (c *Creator) Create(root tree.Entry, destination string) []Issue {
	r := newRun()
	c.validate(root, destination, r)
	if !r.ledger.Empty() {
		return r.ledger.Issues()
	}
	c.createAll(r)
	return r.ledger.Issues()
}

// Op describes one creation step a valid tree would perform, in order.
type Op struct {
	// Path is the resolved target path.
	Path string `json:"path"`

	// Dir reports whether the step creates a directory rather than a file.
	Dir bool `json:"dir"`
}

// Plan validates root against destination without mutating anything and
// returns the issues together with the ordered steps creation would
// take. The steps are only meaningful when the issue list is empty.
func (c *Creator) Plan(root tree.Entry, destination string) ([]Issue, []Op) {
	r := newRun()
	c.validate(root, destination, r)

	ops := make([]Op, 0, len(r.queue))
	for _, item := range r.queue {
		_, isDir := item.entry.(*tree.Directory)
		ops = append(ops, Op{Path: item.path, Dir: isDir})
	}
	return r.ledger.Issues(), ops
}
