// =============================================================================
// lottosql - Logger
// =============================================================================

package converter

import "fmt"

// Logger is the logging interface used by the conversion pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// stdLogger prints levelled log lines to stdout. Debug output is gated on
// the verbose flag.
type stdLogger struct {
	verbose bool
}

// NewStdLogger returns the default stdout logger.
func NewStdLogger(verbose bool) Logger {
	return &stdLogger{verbose: verbose}
}

func (l *stdLogger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *stdLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *stdLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *stdLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
