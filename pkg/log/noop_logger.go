package log

var _ Logger = NoopLogger{}

// NoopLogger discards every message. It is what FromContext hands out when
// no logger has been attached, and it keeps tests quiet.
type NoopLogger struct{}

// NewNoopLogger returns a Logger that drops everything it is given.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(msg string, keysAndValues ...any) {}
func (NoopLogger) Info(msg string, keysAndValues ...any)  {}
func (NoopLogger) Warn(msg string, keysAndValues ...any)  {}
func (NoopLogger) Error(msg string, keysAndValues ...any) {}
func (NoopLogger) Fatal(msg string, keysAndValues ...any) {}

func (n NoopLogger) WithKV(key string, value any) Logger { return n }
func (n NoopLogger) WithName(name string) Logger         { return n }
func (NoopLogger) Name() string                          { return "noop" }
