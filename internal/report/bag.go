package report

import (
	"fortio.org/safecast"
)

// Bag is the default Sink: an append-only, insertion-ordered collection of
// recorded messages with an optional capacity limit.
type Bag struct {
	items   []Message
	max     uint16
	dropped int
}

// NewBag creates a Bag that keeps at most max messages. max <= 0 means
// unlimited.
func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil || max <= 0 {
		capped = 0
	}
	hint := int(capped)
	if hint == 0 {
		hint = 16
	}
	return &Bag{
		items: make([]Message, 0, hint),
		max:   capped,
	}
}

// Record добавляет сообщение, учитывая лимит. Сообщения сверх лимита
// молча отбрасываются (считаются в Dropped).
func (b *Bag) Record(msg Message) {
	if b.max != 0 && len(b.items) >= int(b.max) {
		b.dropped++
		return
	}
	b.items = append(b.items, msg)
}

// Messages возвращает read-only slice сообщений в порядке записи.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Messages() []Message {
	return b.items
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Cap returns the capacity limit, 0 when unlimited.
func (b *Bag) Cap() uint16 {
	return b.max
}

// Dropped returns how many records were discarded because of the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// Worst returns the highest severity among the recorded messages. Note
// this reflects only what passed the log threshold; the Engine watermark
// is the authoritative answer for "was anything bad seen".
func (b *Bag) Worst() Severity {
	worst := SevDebug
	for i := range b.items {
		if b.items[i].Severity > worst {
			worst = b.items[i].Severity
		}
	}
	return worst
}
