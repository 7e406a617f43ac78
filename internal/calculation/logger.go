package calculation

import "github.com/sirupsen/logrus"

// Logger is a minimal logging interface for the planning engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// LogrusLogger adapts a logrus logger to the engine's Logger interface.
type LogrusLogger struct {
	L *logrus.Logger
}

// NewLogrusLogger wraps the given logrus logger; a nil argument wraps the
// logrus standard logger.
func NewLogrusLogger(l *logrus.Logger) LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return LogrusLogger{L: l}
}

func (ll LogrusLogger) Debugf(format string, args ...any) { ll.L.Debugf(format, args...) }
func (ll LogrusLogger) Infof(format string, args ...any)  { ll.L.Infof(format, args...) }
func (ll LogrusLogger) Warnf(format string, args ...any)  { ll.L.Warnf(format, args...) }
func (ll LogrusLogger) Errorf(format string, args ...any) { ll.L.Errorf(format, args...) }
