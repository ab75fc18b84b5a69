package report

// Engine applies the dispatch protocol to every message a pipeline stage
// produces: drop it, record it into the Sink, or abort the run with an
// AbortError. It also tracks the worst severity seen so far.
//
// An Engine is created once per processing run (or sub-run) with fixed
// thresholds and is not safe for concurrent use; the intended model is one
// Engine per sequential run. After a dispatch has returned an AbortError
// the run is over — the behavior of further dispatches through the same
// Engine is unspecified.
type Engine struct {
	sink    Sink
	logAt   Severity
	abortAt Severity
	worst   Severity
}

// NewEngine constructs an Engine with explicit thresholds. Messages at or
// above logAt are forwarded to the sink; messages at or above abortAt fail
// the dispatch instead.
func NewEngine(sink Sink, logAt, abortAt Severity) *Engine {
	return &Engine{
		sink:    sink,
		logAt:   logAt,
		abortAt: abortAt,
		worst:   SevDebug,
	}
}

// NewEngineWithLog constructs an Engine that only aborts on SevFatal.
func NewEngineWithLog(sink Sink, logAt Severity) *Engine {
	return NewEngine(sink, logAt, SevFatal)
}

// NewDefaultEngine constructs an Engine with the default policy:
// log at SevInfo, abort only on SevFatal.
func NewDefaultEngine(sink Sink) *Engine {
	return NewEngine(sink, SevInfo, SevFatal)
}

// LogThreshold returns the minimum severity forwarded to the sink.
func (e *Engine) LogThreshold() Severity { return e.logAt }

// AbortThreshold returns the minimum severity that fails a dispatch.
func (e *Engine) AbortThreshold() Severity { return e.abortAt }

// Worst returns the highest severity dispatched through this Engine so
// far, including messages absorbed via Merge. Initially SevDebug.
func (e *Engine) Worst() Severity { return e.worst }

// Sink returns the sink this Engine forwards to.
func (e *Engine) Sink() Sink { return e.sink }

// IsSuccess reports whether nothing at SevError or above has been seen.
// Derived from the watermark alone, so it stays correct even when the log
// threshold kept the offending messages out of the sink.
func (e *Engine) IsSuccess() bool { return e.worst < SevError }

// Debug dispatches msg at SevDebug.
func (e *Engine) Debug(msg Message) error {
	msg.Severity = SevDebug
	return e.dispatch(msg)
}

// Info dispatches msg at SevInfo.
func (e *Engine) Info(msg Message) error {
	msg.Severity = SevInfo
	return e.dispatch(msg)
}

// Warn dispatches msg at SevWarning.
func (e *Engine) Warn(msg Message) error {
	msg.Severity = SevWarning
	return e.dispatch(msg)
}

// Error dispatches msg at SevError. With the common abort threshold of
// SevError this is the entry point that usually terminates a run.
func (e *Engine) Error(msg Message) error {
	msg.Severity = SevError
	return e.dispatch(msg)
}

// dispatch — единственный путь для всех сообщений, независимо от входной
// точки. Порядок шагов фиксирован:
//
//  1. severity >= abortAt — немедленный AbortError, без записи в sink;
//  2. монотонное обновление watermark (даже ниже порога логирования);
//  3. severity >= logAt — запись в sink.
//
// The abort check runs strictly before any recording, so an aborting
// message is never partially recorded.
func (e *Engine) dispatch(msg Message) error {
	if msg.Severity >= e.abortAt {
		return &AbortError{Message: msg}
	}
	if msg.Severity > e.worst {
		e.worst = msg.Severity
	}
	if msg.Severity >= e.logAt {
		e.sink.Record(msg)
	}
	return nil
}

// Merge replays a finished sequence of messages through this Engine's own
// dispatch, in order, at each message's recorded severity and under this
// Engine's thresholds — not the thresholds of whatever produced them. A
// message that was merely recorded under a lax source policy can therefore
// abort here; on the first abort the merge stops and the remaining
// messages are not replayed.
func (e *Engine) Merge(msgs []Message) error {
	for _, msg := range msgs {
		if err := e.dispatch(msg); err != nil {
			return err
		}
	}
	return nil
}

// MergeFrom absorbs the recorded content of a completed Engine.
func (e *Engine) MergeFrom(other *Engine) error {
	if other == nil || other.sink == nil {
		return nil
	}
	return e.Merge(other.sink.Messages())
}
