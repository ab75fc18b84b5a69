package report

type dedupKey struct {
	sev    Severity
	origin string
	text   string
}

// DedupSink wraps another Sink and suppresses duplicate messages with the
// same severity, origin and text.
type DedupSink struct {
	next Sink
	seen map[dedupKey]struct{}
}

// NewDedupSink returns a Sink that filters out duplicates while forwarding
// unique messages to the provided sink.
func NewDedupSink(next Sink) *DedupSink {
	return &DedupSink{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (s *DedupSink) Record(msg Message) {
	if s == nil {
		return
	}
	key := dedupKey{sev: msg.Severity, origin: msg.Origin, text: msg.Text}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	if s.next != nil {
		s.next.Record(msg)
	}
}

func (s *DedupSink) Messages() []Message {
	if s == nil || s.next == nil {
		return nil
	}
	return s.next.Messages()
}
