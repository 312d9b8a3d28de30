package log

// Logger is the structured logging interface used by the tool layer.
// Implementations must be safe for concurrent use. keysAndValues arguments
// are treated as alternating key-value pairs (e.g. "account", addr).
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, keysAndValues ...any)
	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)
	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...any)
	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)
	// Fatal logs a message at fatal level and terminates the program.
	Fatal(msg string, keysAndValues ...any)

	// WithKV returns a logger that attaches the key-value pair to every
	// future message.
	WithKV(key string, value any) Logger
	// WithName returns a logger named under the current one. Names
	// accumulate separated by dots.
	WithName(name string) Logger
	// Name returns the logger's dot-separated name.
	Name() string
}

// Level represents the severity of a log message. It doubles as the
// Config.Level value and filters entries below the configured severity.
type Level string

// Severity levels accepted by Config.Level, most to least verbose.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
