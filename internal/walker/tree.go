package walker

import (
	"fmt"
	"sort"
	"strings"

	"skema/internal/report"
	"skema/internal/translate"
)

const refKey = "$ref"

// Outline walks a decoded JSON document and emits one message per node,
// describing its shape. Callers typically dispatch outline messages at
// the debug level.
type Outline struct {
	Doc any
}

func (w Outline) Walk() []report.Message {
	var out []report.Message
	descend(w.Doc, "", -1, func(ptr string, node any, _ int) {
		out = append(out, report.New(ptr, describe(node)))
	})
	return out
}

// Refs walks a document and emits a message for every string-valued
// "$ref" member, reporting how the resolution table rewrites it.
type Refs struct {
	Doc   any
	Table *translate.Table
}

func (w Refs) Walk() []report.Message {
	table := w.Table
	if table == nil {
		table = translate.Default()
	}
	var out []report.Message
	descend(w.Doc, "", -1, func(ptr string, node any, _ int) {
		obj, ok := node.(map[string]any)
		if !ok {
			return
		}
		ref, ok := obj[refKey].(string)
		if !ok {
			return
		}
		target := table.Translate(ref)
		if target == ref {
			out = append(out, report.Newf(ptr, "reference %q", ref))
		} else {
			out = append(out, report.Newf(ptr, "reference %q redirected to %q", ref, target))
		}
	})
	return out
}

// Problems walks a document and emits a message per structural problem:
// non-string $ref values, empty object keys, and nodes nested deeper
// than MaxDepth. Callers typically dispatch these at the error level.
type Problems struct {
	Doc      any
	MaxDepth int
}

func (w Problems) Walk() []report.Message {
	var out []report.Message
	descend(w.Doc, "", w.MaxDepth, func(ptr string, node any, depth int) {
		if w.MaxDepth > 0 && depth >= w.MaxDepth {
			out = append(out, report.Newf(ptr, "nesting exceeds %d levels", w.MaxDepth))
			return
		}
		obj, ok := node.(map[string]any)
		if !ok {
			return
		}
		if ref, present := obj[refKey]; present {
			if _, isString := ref.(string); !isString {
				out = append(out, report.New(ptr, "$ref value is not a string"))
			}
		}
		for key := range obj {
			if key == "" {
				out = append(out, report.New(ptr, "empty object key"))
			}
		}
	})
	return out
}

// descend visits node and its children depth-first. maxDepth > 0 stops
// descent at that depth (the visit at the limit still happens, so the
// walker can report it); maxDepth <= 0 means unbounded.
func descend(node any, ptr string, maxDepth int, visit func(ptr string, node any, depth int)) {
	descendAt(node, ptr, 0, maxDepth, visit)
}

func descendAt(node any, ptr string, depth, maxDepth int, visit func(string, any, int)) {
	visit(ptr, node, depth)
	if maxDepth > 0 && depth >= maxDepth {
		return
	}
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			descendAt(n[k], ptr+"/"+escapePointer(k), depth+1, maxDepth, visit)
		}
	case []any:
		for i, item := range n {
			descendAt(item, fmt.Sprintf("%s/%d", ptr, i), depth+1, maxDepth, visit)
		}
	}
}

func describe(node any) string {
	switch n := node.(type) {
	case map[string]any:
		return fmt.Sprintf("object with %d members", len(n))
	case []any:
		return fmt.Sprintf("array with %d elements", len(n))
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("unexpected value of type %T", node)
}

// escapePointer applies RFC 6901 token escaping.
func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
