package report

import "fmt"

// Message is a single unit of reported information. Text is the human
// readable part; Origin names what produced the message (a pipeline stage,
// a JSON pointer, a file path). Severity is stamped by the Engine entry
// point that dispatches the message, not by the producer.
//
// Message is a value type. Every dispatch works on its own copy, so a
// producer can hold one Message and redispatch it at several levels
// without the copies aliasing each other.
type Message struct {
	Severity Severity
	Text     string
	Origin   string
}

// New constructs a message with the severity left at its zero value.
func New(origin, text string) Message {
	return Message{Origin: origin, Text: text}
}

// Newf is New with fmt-style formatting of the text.
func Newf(origin, format string, args ...any) Message {
	return Message{Origin: origin, Text: fmt.Sprintf(format, args...)}
}

func (m Message) String() string {
	if m.Origin == "" {
		return m.Severity.String() + ": " + m.Text
	}
	return m.Severity.String() + ": " + m.Origin + ": " + m.Text
}
