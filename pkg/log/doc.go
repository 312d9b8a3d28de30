// Package log provides structured, leveled logging for the snip12 tool.
//
// The package centers on the Logger interface:
//
//	type Logger interface {
//	    Debug(msg string, keysAndValues ...any)
//	    Info(msg string, keysAndValues ...any)
//	    Warn(msg string, keysAndValues ...any)
//	    Error(msg string, keysAndValues ...any)
//	    Fatal(msg string, keysAndValues ...any)
//	    WithKV(key string, value any) Logger
//	    WithName(name string) Logger
//	    Name() string
//	}
//
// Two implementations are provided: ZapLogger, backed by Uber's zap, and
// NoopLogger, which discards everything and serves as the safe default.
//
// # Usage
//
// Build a logger from a Config and log with key-value pairs:
//
//	logger := log.NewZapLogger(log.Config{
//	    Format: "logfmt",
//	    Level:  log.LevelInfo,
//	})
//	logger.Info("document hashed", "revision", rev, "hash", hash)
//
// # Derived loggers
//
// WithName builds a dot-separated name hierarchy and WithKV pins context
// onto every subsequent entry:
//
//	hashLogger := logger.WithName("hasher").WithKV("account", account)
//
// Both return new loggers; the receiver is never mutated.
//
// # Context helpers
//
// SetContextLogger and FromContext carry a logger through call chains that
// only pass a context. FromContext falls back to a NoopLogger, so callers
// never have to nil-check:
//
//	ctx = log.SetContextLogger(ctx, logger)
//	log.FromContext(ctx).Debug("encoding value", "type", fieldType)
//
// # Environment configuration
//
// Config carries cleanenv tags, so embedding it in an application config
// struct picks up:
//
//   - LOG_FORMAT: console, logfmt or json (default console)
//   - LOG_LEVEL: debug, info, warn, error or fatal (default info)
//   - LOG_OUTPUT: stderr, stdout or a file path (default stderr)
package log
