package creator

import "github.com/Taifin/FSCreator/internal/tree"

// Issue ties one failure, structural or operational, to the entry that
// caused it.
type Issue struct {
	// Entry is the offending node of the declared tree.
	Entry tree.Entry

	// Message is a human-readable description of the failure.
	Message string
}

// Ledger is the append-only list of issues accumulated across both
// phases of a create call. Entries are never removed: once a failure is
// recorded it stays recorded, even if unrelated siblings succeed later.
type Ledger struct {
	issues []Issue
}

// Record appends an issue for entry.
func (l *Ledger) Record(entry tree.Entry, message string) {
	l.issues = append(l.issues, Issue{Entry: entry, Message: message})
}

// Empty reports whether no issue has been recorded.
func (l *Ledger) Empty() bool {
	return len(l.issues) == 0
}

// Len returns the number of recorded issues.
func (l *Ledger) Len() int {
	return len(l.issues)
}

// Issues returns the recorded issues in recording order.
func (l *Ledger) Issues() []Issue {
	return l.issues
}

// workItem is one queued creation step: an entry together with its
// resolved target path.
type workItem struct {
	entry tree.Entry
	path  string
}

// run holds all mutable state for a single create call. Each call
// starts from a fresh run, which is what keeps concurrent calls with
// independent trees and destinations safe.
type run struct {
	ledger  Ledger
	queue   []workItem
	visited map[*tree.Directory]struct{}
}

func newRun() *run {
	return &run{visited: make(map[*tree.Directory]struct{})}
}

func (r *run) enqueue(entry tree.Entry, path string) {
	r.queue = append(r.queue, workItem{entry: entry, path: path})
}
