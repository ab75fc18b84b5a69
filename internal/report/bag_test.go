package report

import "testing"

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Record(Message{Severity: SevInfo, Text: "m"})
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	if bag.Dropped() != 3 {
		t.Fatalf("dropped = %d, want 3", bag.Dropped())
	}
	if bag.Cap() != 2 {
		t.Fatalf("cap = %d, want 2", bag.Cap())
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 100; i++ {
		bag.Record(Message{Severity: SevInfo, Text: "m"})
	}
	if bag.Len() != 100 || bag.Dropped() != 0 {
		t.Fatalf("len = %d dropped = %d", bag.Len(), bag.Dropped())
	}
}

func TestBagOrderAndWorst(t *testing.T) {
	bag := NewBag(0)
	bag.Record(Message{Severity: SevWarning, Text: "first"})
	bag.Record(Message{Severity: SevDebug, Text: "second"})
	bag.Record(Message{Severity: SevError, Text: "third"})

	msgs := bag.Messages()
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if msgs[i].Text != w {
			t.Fatalf("messages[%d] = %q, want %q", i, msgs[i].Text, w)
		}
	}
	if bag.Worst() != SevError {
		t.Fatalf("worst = %v, want %v", bag.Worst(), SevError)
	}
}

func TestDedupSink(t *testing.T) {
	bag := NewBag(0)
	dedup := NewDedupSink(bag)

	dedup.Record(Message{Severity: SevWarning, Origin: "a", Text: "dup"})
	dedup.Record(Message{Severity: SevWarning, Origin: "a", Text: "dup"})
	// same text, different severity — not a duplicate
	dedup.Record(Message{Severity: SevInfo, Origin: "a", Text: "dup"})

	if got := len(dedup.Messages()); got != 2 {
		t.Fatalf("recorded = %d, want 2", got)
	}
}

func TestSeverityRoundTrip(t *testing.T) {
	for sev := SevDebug; sev <= SevFatal; sev++ {
		got, err := ParseSeverity(sev.Label())
		if err != nil {
			t.Fatalf("ParseSeverity(%q): %v", sev.Label(), err)
		}
		if got != sev {
			t.Fatalf("round trip %v -> %v", sev, got)
		}
	}
	if _, err := ParseSeverity("loud"); err == nil {
		t.Fatal("expected error for unknown label")
	}
}
