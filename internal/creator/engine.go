package creator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Taifin/FSCreator/internal/fsops"
	"github.com/Taifin/FSCreator/internal/tree"
)

// createAll consumes the validated work queue strictly in order,
// mutating the filesystem. It must only run on a run whose ledger is
// still empty; the validator guarantees the queue order.
func (c *Creator) createAll(r *run) {
	for len(r.queue) > 0 {
		item := r.queue[0]
		r.queue = r.queue[1:]

		switch entry := item.entry.(type) {
		case *tree.File:
			if err := c.fs.CreateFile(item.path); err != nil {
				r.ledger.Record(entry, failureMessage("create file", err))
				continue
			}
			if err := c.fs.WriteBytes(item.path, []byte(entry.Content)); err != nil {
				// The file object exists on disk at this point; the
				// partial artifact is left in place and reported.
				r.ledger.Record(entry, fmt.Sprintf("file was created but writing its content failed: %v", err))
				continue
			}
			c.log.Debug("created file", zap.String("path", item.path))

		case *tree.Directory:
			if err := c.fs.CreateDirectory(item.path); err != nil {
				r.ledger.Record(entry, failureMessage("create directory", err))
				c.drainSubtree(r, item.path)
				continue
			}
			c.log.Debug("created directory", zap.String("path", item.path))
		}
	}
}

// drainSubtree discards queued items nested under a directory that
// failed to create, recording nothing for them. This front-of-queue
// prefix scan is correct only because entries were enqueued in
// pre-order: a directory's descendants sit contiguously behind it,
// before any unrelated sibling subtree.
func (c *Creator) drainSubtree(r *run, dir string) {
	prefix := dir + string(filepath.Separator)
	skipped := 0
	for len(r.queue) > 0 && strings.HasPrefix(r.queue[0].path, prefix) {
		r.queue = r.queue[1:]
		skipped++
	}
	if skipped > 0 {
		c.log.Debug("skipped descendants of failed directory",
			zap.String("path", dir),
			zap.Int("skipped", skipped))
	}
}

// failureMessage renders a primitive failure for the ledger, keyed on
// its classified kind.
func failureMessage(op string, err error) string {
	switch {
	case errors.Is(err, fsops.ErrAlreadyExists):
		return fmt.Sprintf("failed to %s: already exists on disk", op)
	case errors.Is(err, fsops.ErrUnsupported):
		return fmt.Sprintf("failed to %s: operation not supported by the filesystem", op)
	case errors.Is(err, fsops.ErrPermission):
		return fmt.Sprintf("failed to %s: permission denied", op)
	default:
		return fmt.Sprintf("failed to %s: %v", op, err)
	}
}
