package calculation

// Logger is the minimal logging surface the engine emits to. The CLI
// installs a logrus-backed implementation; library callers may leave the
// default no-op in place.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the engine default so that pure
// calculation paths stay silent unless a caller opts in.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
