// Package walker turns a decoded JSON document into a stream of
// unscoped diagnostic messages. Walkers never pick a severity: the
// embedding pipeline dispatches each walker's output at the level it
// deems appropriate, which keeps traversal logic out of the
// record-or-abort decision entirely.
package walker

import (
	"skema/internal/report"
)

// Walker produces messages by traversing a document. Traversal order is
// deterministic: object members are visited in sorted key order, array
// elements in index order.
type Walker interface {
	Walk() []report.Message
}

// Nop is the trivial walker: it yields nothing. It behaves identically
// to a walker whose traversal finds nothing, and is used whenever a
// pipeline step is a no-op.
type Nop struct{}

func (Nop) Walk() []report.Message { return nil }
