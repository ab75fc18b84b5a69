package reportfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"skema/internal/report"
)

func sample() []report.Message {
	return []report.Message{
		{Severity: report.SevWarning, Origin: "/a", Text: "watch out"},
		{Severity: report.SevInfo, Origin: "/b", Text: "fyi"},
	}
}

func TestPrettyPlain(t *testing.T) {
	var b strings.Builder
	if err := Pretty(&b, sample(), Opts{}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	want := "warning /a: watch out\ninfo /b: fyi\n"
	if b.String() != want {
		t.Fatalf("pretty output:\nwant %q\ngot  %q", want, b.String())
	}
}

func TestPrettyTruncation(t *testing.T) {
	var b strings.Builder
	msgs := []report.Message{
		{Severity: report.SevInfo, Origin: "/long", Text: strings.Repeat("x", 200)},
	}
	if err := Pretty(&b, msgs, Opts{Width: 40}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	line := strings.TrimRight(b.String(), "\n")
	if !strings.HasSuffix(line, "…") {
		t.Fatalf("expected ellipsis, got %q", line)
	}
	if len([]rune(line)) > 41 {
		t.Fatalf("line not clipped: %d runes", len([]rune(line)))
	}
}

func TestPrettyMax(t *testing.T) {
	var b strings.Builder
	if err := Pretty(&b, sample(), Opts{Max: 1}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(b.String(), "... and 1 more") {
		t.Fatalf("missing overflow marker: %q", b.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var b strings.Builder
	if err := JSON(&b, sample(), report.SevWarning, Opts{}); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out Output
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 || out.Worst != "warning" || !out.Success {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	if out.Messages[0].Severity != "warning" || out.Messages[0].Origin != "/a" {
		t.Fatalf("unexpected first message: %+v", out.Messages[0])
	}
}

func TestSortDeterministic(t *testing.T) {
	msgs := []report.Message{
		{Severity: report.SevInfo, Origin: "/b", Text: "z"},
		{Severity: report.SevError, Origin: "/a", Text: "y"},
		{Severity: report.SevDebug, Origin: "/a", Text: "x"},
	}
	Sort(msgs)
	if msgs[0].Origin != "/a" || msgs[0].Severity != report.SevError {
		t.Fatalf("sort order wrong: %v", msgs)
	}
	if msgs[1].Origin != "/a" || msgs[1].Severity != report.SevDebug {
		t.Fatalf("sort order wrong: %v", msgs)
	}
}
