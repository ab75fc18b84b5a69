package report

import (
	"github.com/sirupsen/logrus"
)

// LogrusSink forwards records to a logrus logger. It is write-only:
// Messages always returns nil, so merging from an Engine backed by this
// sink absorbs nothing.
type LogrusSink struct {
	log *logrus.Logger
}

// NewLogrusSink wraps log; a nil log uses the logrus standard logger.
func NewLogrusSink(log *logrus.Logger) *LogrusSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogrusSink{log: log}
}

func (s *LogrusSink) Record(msg Message) {
	entry := s.log.WithField("origin", msg.Origin)
	switch msg.Severity {
	case SevDebug:
		entry.Debug(msg.Text)
	case SevInfo:
		entry.Info(msg.Text)
	case SevWarning:
		entry.Warn(msg.Text)
	default:
		// SevError and above. Never logrus.Fatal here: that would kill
		// the process, and aborting is the Engine's job, not the sink's.
		entry.Error(msg.Text)
	}
}

func (s *LogrusSink) Messages() []Message { return nil }
