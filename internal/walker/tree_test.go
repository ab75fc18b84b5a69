package walker

import (
	"encoding/json"
	"testing"

	"skema/internal/report"
	"skema/internal/translate"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("bad test document: %v", err)
	}
	return doc
}

func TestNopYieldsNothing(t *testing.T) {
	eng := report.NewDefaultEngine(report.NewBag(0))
	for _, msg := range (Nop{}).Walk() {
		if err := eng.Info(msg); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
	}
	if eng.Worst() != report.SevDebug {
		t.Fatalf("worst changed: %v", eng.Worst())
	}
	if len(eng.Sink().Messages()) != 0 {
		t.Fatalf("sink changed: %v", eng.Sink().Messages())
	}
}

func TestOutlineDeterministic(t *testing.T) {
	doc := decode(t, `{"b": [1, true], "a": {"x": null}}`)

	first := Outline{Doc: doc}.Walk()
	second := Outline{Doc: doc}.Walk()
	if len(first) != len(second) {
		t.Fatalf("walk not restartable: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("walk not deterministic at %d: %v vs %v", i, first[i], second[i])
		}
	}

	wantOrigins := []string{"", "/a", "/a/x", "/b", "/b/0", "/b/1"}
	if len(first) != len(wantOrigins) {
		t.Fatalf("got %d messages, want %d: %v", len(first), len(wantOrigins), first)
	}
	for i, want := range wantOrigins {
		if first[i].Origin != want {
			t.Fatalf("origin[%d] = %q, want %q", i, first[i].Origin, want)
		}
		if first[i].Severity != 0 {
			t.Fatalf("walker stamped a severity: %v", first[i])
		}
	}
}

func TestOutlineDescribes(t *testing.T) {
	doc := decode(t, `{"a": 1}`)
	msgs := Outline{Doc: doc}.Walk()
	if msgs[0].Text != "object with 1 members" {
		t.Fatalf("root described as %q", msgs[0].Text)
	}
	if msgs[1].Text != "number" {
		t.Fatalf("/a described as %q", msgs[1].Text)
	}
}

func TestRefsRedirect(t *testing.T) {
	b := translate.NewBuilder()
	_ = b.Map("old", "new")
	table := b.Build()

	doc := decode(t, `{"items": {"$ref": "old"}, "plain": {"$ref": "keep"}}`)
	msgs := Refs{Doc: doc, Table: table}.Walk()

	if len(msgs) != 2 {
		t.Fatalf("got %d ref messages: %v", len(msgs), msgs)
	}
	if msgs[0].Origin != "/items" || msgs[0].Text != `reference "old" redirected to "new"` {
		t.Fatalf("redirect message = %v", msgs[0])
	}
	if msgs[1].Origin != "/plain" || msgs[1].Text != `reference "keep"` {
		t.Fatalf("plain message = %v", msgs[1])
	}
}

func TestProblems(t *testing.T) {
	doc := decode(t, `{"bad": {"$ref": 42}, "deep": {"a": {"b": {"c": 1}}}}`)
	msgs := Problems{Doc: doc, MaxDepth: 3}.Walk()

	found := map[string]bool{}
	for _, m := range msgs {
		found[m.Origin+": "+m.Text] = true
	}
	if !found["/bad: $ref value is not a string"] {
		t.Fatalf("missing non-string $ref problem: %v", msgs)
	}
	if !found["/deep/a/b: nesting exceeds 3 levels"] {
		t.Fatalf("missing depth problem: %v", msgs)
	}
	// descent stops at the limit, so nothing below it is reported
	if found["/deep/a/b/c: nesting exceeds 3 levels"] {
		t.Fatalf("walked past the depth limit: %v", msgs)
	}
}

func TestEscapePointer(t *testing.T) {
	doc := decode(t, `{"a/b": {"~": 1}}`)
	msgs := Outline{Doc: doc}.Walk()
	if msgs[1].Origin != "/a~1b" {
		t.Fatalf("origin = %q, want /a~1b", msgs[1].Origin)
	}
	if msgs[2].Origin != "/a~1b/~0" {
		t.Fatalf("origin = %q, want /a~1b/~0", msgs[2].Origin)
	}
}
