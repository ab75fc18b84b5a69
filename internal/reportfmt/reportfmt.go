// Package reportfmt renders recorded diagnostic messages into
// human-readable (pretty) and machine-readable (JSON) forms. It never
// inspects engine state beyond the message slice it is handed.
package reportfmt

import (
	"sort"

	"skema/internal/report"
)

// Opts configures rendering.
type Opts struct {
	Color bool
	Width int // максимальная ширина строки, 0 - не ограничено
	Max   int // обрезка вывода, не Bag
}

// Sort orders messages deterministically: by origin, then severity
// (descending, worst first), then text. Insertion order inside the sink
// is already stable; Sort is for aggregated output across files.
func Sort(msgs []report.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		mi, mj := msgs[i], msgs[j]
		if mi.Origin != mj.Origin {
			return mi.Origin < mj.Origin
		}
		if mi.Severity != mj.Severity {
			return mi.Severity > mj.Severity
		}
		return mi.Text < mj.Text
	})
}

func truncate(msgs []report.Message, max int) []report.Message {
	if max > 0 && len(msgs) > max {
		return msgs[:max]
	}
	return msgs
}
