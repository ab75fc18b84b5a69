package report

// AbortError terminates a processing run. It carries the exact message
// whose severity crossed the abort threshold so the operator can locate
// the failing pipeline stage.
type AbortError struct {
	Message Message
}

func (e *AbortError) Error() string {
	return "processing aborted: " + e.Message.String()
}
