// Package creator materializes a declared entry tree onto a real filesystem.
//
// Work happens in two phases. The validator walks the tree in pre-order,
// collecting structural problems (blank or invalid names, sibling name
// collisions, on-disk collisions, circular directory references) without
// touching the filesystem, and builds the ordered work queue as it goes.
// Only when validation found nothing does the engine consume the queue and
// mutate the filesystem.
//
// Creation is not transactional. A failed directory suppresses its own
// queued descendants and nothing else; entries created before a failure
// stay on disk. Every failure, structural or operational, is reported
// against the entry that caused it via the returned issue list.
package creator
