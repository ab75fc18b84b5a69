package translate

import (
	"errors"
	"testing"
)

func TestLastWriteWins(t *testing.T) {
	b := NewBuilder()
	if err := b.Map("A", "B"); err != nil {
		t.Fatalf("map: %v", err)
	}
	if err := b.Map("A", "C"); err != nil {
		t.Fatalf("map: %v", err)
	}
	table := b.Build()

	if to, ok := table.Lookup("A"); !ok || to != "C" {
		t.Fatalf("Lookup(A) = %q, %v; want C, true", to, ok)
	}
	if _, ok := table.Lookup("X"); ok {
		t.Fatal("Lookup(X) must report absence")
	}
}

func TestFrozenBuilder(t *testing.T) {
	b := NewBuilder()
	if err := b.Map("A", "B"); err != nil {
		t.Fatalf("map: %v", err)
	}
	table := b.Build()

	if err := b.Map("A", "C"); !errors.Is(err, ErrFrozen) {
		t.Fatalf("Map after Build: %v, want ErrFrozen", err)
	}
	if err := b.Namespace("https://x/"); !errors.Is(err, ErrFrozen) {
		t.Fatalf("Namespace after Build: %v, want ErrFrozen", err)
	}
	// freeze must not lose earlier writes
	if to, ok := table.Lookup("A"); !ok || to != "B" {
		t.Fatalf("Lookup(A) = %q, %v", to, ok)
	}
}

func TestSnapshotDetachedFromBuilderMap(t *testing.T) {
	b := NewBuilder()
	_ = b.Map("A", "B")
	table := b.Build()

	// mutating the builder's internal map through a second builder round
	// must not show up in the frozen snapshot
	b.frozen = false
	_ = b.Map("A", "mutated")
	if to, _ := table.Lookup("A"); to != "B" {
		t.Fatalf("snapshot mutated: Lookup(A) = %q", to)
	}
}

func TestTranslateIdentity(t *testing.T) {
	table := Default()
	if got := table.Translate("anything"); got != "anything" {
		t.Fatalf("Translate = %q, want identity", got)
	}
}

func TestTranslateNamespaceAndRedirect(t *testing.T) {
	b := NewBuilder()
	if err := b.Namespace("https://example.com/schemas/"); err != nil {
		t.Fatalf("namespace: %v", err)
	}
	_ = b.Map("https://example.com/schemas/core", "https://example.com/schemas/core-v2")
	table := b.Build()

	if got := table.Translate("core"); got != "https://example.com/schemas/core-v2" {
		t.Fatalf("Translate(core) = %q", got)
	}
	if got := table.Translate("other"); got != "https://example.com/schemas/other" {
		t.Fatalf("Translate(other) = %q", got)
	}
	// absolute ids bypass the namespace
	if got := table.Translate("https://elsewhere/x"); got != "https://elsewhere/x" {
		t.Fatalf("Translate(absolute) = %q", got)
	}
}

func TestTranslateNonURIIdentifiers(t *testing.T) {
	b := NewBuilder()
	_ = b.Map("old-id", "new-id")
	table := b.Build()

	if got := table.Translate("old-id"); got != "new-id" {
		t.Fatalf("Translate(old-id) = %q", got)
	}
}
