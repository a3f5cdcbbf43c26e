package client

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// Logger receives debug output from the client. Provide one via WithLogger,
// or use WithDebug for a stderr logger with default settings.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// SimpleLogger writes leveled log lines to stderr.
type SimpleLogger struct {
	logger *log.Logger
}

// NewSimpleLogger creates a stderr logger with timestamps.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{
		logger: log.New(os.Stderr, "vane ", log.LstdFlags|log.Lmicroseconds),
	}
}

// Debugf logs at debug level.
func (l *SimpleLogger) Debugf(format string, args ...any) {
	l.logger.Printf("DEBUG "+format, args...)
}

// Infof logs at info level.
func (l *SimpleLogger) Infof(format string, args ...any) {
	l.logger.Printf("INFO "+format, args...)
}

// Errorf logs at error level.
func (l *SimpleLogger) Errorf(format string, args ...any) {
	l.logger.Printf("ERROR "+format, args...)
}

// DebugConfig controls what the client logs per request.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool
	LogErrors    bool
}

// DefaultDebugConfig returns a disabled debug configuration that logs
// everything once enabled.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		LogErrors:    true,
	}
}

// generateRequestID returns a unique ID correlating the log lines of one call.
func generateRequestID() string {
	return uuid.NewString()
}
