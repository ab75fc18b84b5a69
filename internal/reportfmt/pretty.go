package reportfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"skema/internal/report"
)

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow, color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
)

// Pretty prints one line per message:
//
//	<severity> <origin>: <text>
//
// Color is applied to the severity label only. Lines longer than
// opts.Width display columns are truncated with an ellipsis.
func Pretty(w io.Writer, msgs []report.Message, opts Opts) error {
	for _, msg := range truncate(msgs, opts.Max) {
		line := msg.Origin + ": " + msg.Text
		if msg.Origin == "" {
			line = msg.Text
		}
		if opts.Width > 0 {
			line = clip(line, opts.Width-len(msg.Severity.Label())-1)
		}
		label := msg.Severity.Label()
		if opts.Color {
			label = severityColor(msg.Severity).Sprint(label)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, line); err != nil {
			return err
		}
	}
	if opts.Max > 0 && len(msgs) > opts.Max {
		if _, err := fmt.Fprintf(w, "... and %d more\n", len(msgs)-opts.Max); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(sev report.Severity) *color.Color {
	switch sev {
	case report.SevDebug:
		return debugColor
	case report.SevInfo:
		return infoColor
	case report.SevWarning:
		return warnColor
	}
	return errColor
}

// clip shortens s to at most width display columns, appending an
// ellipsis when anything was cut.
func clip(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
