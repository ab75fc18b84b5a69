// Package translate implements the identifier resolution table used when
// rewriting document references: an accumulate-then-freeze builder and the
// immutable table it produces.
package translate

import (
	"errors"
	"net/url"
)

// ErrFrozen is returned by Builder mutations after Build has been called.
var ErrFrozen = errors.New("translate: builder is frozen")

// Builder accumulates redirect mappings. Zero value is ready to use. Not
// safe for concurrent use; build once, then share the Table freely.
type Builder struct {
	namespace string
	redirects map[string]string
	frozen    bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{redirects: make(map[string]string)}
}

// Namespace sets the base namespace relative identifiers resolve against.
func (b *Builder) Namespace(ns string) error {
	if b.frozen {
		return ErrFrozen
	}
	b.namespace = ns
	return nil
}

// Map adds a redirect from one identifier to another. The last write for
// a given key wins.
func (b *Builder) Map(from, to string) error {
	if b.frozen {
		return ErrFrozen
	}
	if b.redirects == nil {
		b.redirects = make(map[string]string)
	}
	b.redirects[from] = to
	return nil
}

// Build freezes the builder and returns an immutable snapshot. Further
// mutations through the builder fail with ErrFrozen.
func (b *Builder) Build() *Table {
	b.frozen = true
	redirects := make(map[string]string, len(b.redirects))
	for k, v := range b.redirects {
		redirects[k] = v
	}
	return &Table{namespace: b.namespace, redirects: redirects}
}

// Table is an immutable identifier-to-identifier redirect mapping. Safe
// for concurrent readers.
type Table struct {
	namespace string
	redirects map[string]string
}

// Default returns an empty table: no namespace, no redirects.
func Default() *Table {
	return NewBuilder().Build()
}

// Lookup returns the redirect target for id, if one was registered.
// Absence means "no redirection", not an error.
func (t *Table) Lookup(id string) (string, bool) {
	to, ok := t.redirects[id]
	return to, ok
}

// Translate resolves id against the namespace (when both parse as URIs)
// and then applies the redirect mapping. Unmapped identifiers come back
// unchanged, so Translate is total.
func (t *Table) Translate(id string) string {
	resolved := t.resolve(id)
	if to, ok := t.redirects[resolved]; ok {
		return to
	}
	if to, ok := t.redirects[id]; ok {
		return to
	}
	return resolved
}

// Len returns the number of registered redirects.
func (t *Table) Len() int {
	return len(t.redirects)
}

func (t *Table) resolve(id string) string {
	if t.namespace == "" {
		return id
	}
	base, err := url.Parse(t.namespace)
	if err != nil || !base.IsAbs() {
		return id
	}
	ref, err := url.Parse(id)
	if err != nil || ref.IsAbs() {
		return id
	}
	return base.ResolveReference(ref).String()
}
