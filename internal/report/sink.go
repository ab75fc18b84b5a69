package report

// Sink — минимальный контракт хранения отправленных сообщений.
// Реализации: Bag (кладёт в срез), DedupSink (фильтр дубликатов),
// LogrusSink (пишет в логгер).
//
// Record must not fail: recording failures are outside the engine's error
// model. Messages returns the recorded messages in insertion order; the
// returned slice is a restartable view and may be ranged over any number
// of times. Write-only sinks return nil.
type Sink interface {
	Record(Message)
	Messages() []Message
}

// NopSink discards every record. Useful when only the watermark and the
// abort behavior of an Engine matter.
type NopSink struct{}

func (NopSink) Record(Message)      {}
func (NopSink) Messages() []Message { return nil }
