package reportfmt

import (
	"encoding/json"
	"io"

	"skema/internal/report"
)

// MessageJSON представляет одно сообщение в JSON формате.
type MessageJSON struct {
	Severity string `json:"severity"`
	Origin   string `json:"origin,omitempty"`
	Message  string `json:"message"`
}

// Output представляет корневую структуру JSON вывода.
type Output struct {
	Messages []MessageJSON `json:"messages"`
	Count    int           `json:"count"`
	Worst    string        `json:"worst"`
	Success  bool          `json:"success"`
}

// JSON writes the machine-readable form. Count and Worst describe the
// full slice even when opts.Max trims the rendered list.
func JSON(w io.Writer, msgs []report.Message, worst report.Severity, opts Opts) error {
	out := Output{
		Messages: make([]MessageJSON, 0, len(msgs)),
		Count:    len(msgs),
		Worst:    worst.Label(),
		Success:  worst < report.SevError,
	}
	for _, msg := range truncate(msgs, opts.Max) {
		out.Messages = append(out.Messages, MessageJSON{
			Severity: msg.Severity.Label(),
			Origin:   msg.Origin,
			Message:  msg.Text,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
