// Package logging provides a minimal logging interface and adapters for the
// agenda directory.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the directory uses to record mutations and rejected
// operations. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NewLogger building a JSON or text slog handler from LoggerConfig
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "text", Output: os.Stderr})
//	dir := directory.New(func(o *directory.Options) { o.Logger = logger })
package logging
