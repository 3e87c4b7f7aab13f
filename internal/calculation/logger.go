package calculation

// Logger is what the forecast engine logs through. *logrus.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; it is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// scopedLogger prefixes every message, so lines from concurrent scenario runs can be
// told apart.
type scopedLogger struct {
	Logger
	prefix string
}

func withScope(l Logger, scope string) Logger {
	if _, ok := l.(NopLogger); ok {
		return l
	}
	return scopedLogger{Logger: l, prefix: "[" + scope + "] "}
}

func (s scopedLogger) Debugf(format string, args ...any) { s.Logger.Debugf(s.prefix+format, args...) }
func (s scopedLogger) Infof(format string, args ...any)  { s.Logger.Infof(s.prefix+format, args...) }
func (s scopedLogger) Warnf(format string, args ...any)  { s.Logger.Warnf(s.prefix+format, args...) }
func (s scopedLogger) Errorf(format string, args ...any) { s.Logger.Errorf(s.prefix+format, args...) }
