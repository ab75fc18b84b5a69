package report

import "fmt"

// Severity defines the importance of a diagnostic message.
// The order is total and fixed: Debug < Info < Warning < Error < Fatal.
type Severity uint8

const (
	// SevDebug is for trace-level diagnostics.
	SevDebug Severity = iota
	// SevInfo is for informational diagnostics.
	SevInfo
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevDebug:
		return "DEBUG"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Label returns the lower-case form used in machine output and config files.
func (s Severity) Label() string {
	switch s {
	case SevDebug:
		return "debug"
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevFatal:
		return "fatal"
	}
	return "unknown"
}

// ParseSeverity converts a config-file label into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "debug":
		return SevDebug, nil
	case "info":
		return SevInfo, nil
	case "warning", "warn":
		return SevWarning, nil
	case "error":
		return SevError, nil
	case "fatal":
		return SevFatal, nil
	}
	return SevDebug, fmt.Errorf("unknown severity %q", s)
}
