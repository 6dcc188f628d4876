// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message. Hidden unless debug logging is enabled.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error together with its cause chain.
	Error(err error)
	// SetDebug toggles debug level output.
	SetDebug(enable bool)
}
