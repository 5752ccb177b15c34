package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

var (
	verboseMode bool
	stdLogger   *log.Logger
)

func init() {
	stdLogger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.InfoLevel,
	})
}

// SetVerbose enables or disables debug-level logging.
func SetVerbose(verbose bool) {
	verboseMode = verbose
	if verbose {
		stdLogger.SetLevel(log.DebugLevel)
	} else {
		stdLogger.SetLevel(log.InfoLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return verboseMode
}

// Debugf logs a formatted debug message, shown only in verbose mode.
func Debugf(format string, v ...interface{}) {
	stdLogger.Debugf(format, v...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	stdLogger.Infof(format, v...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	stdLogger.Warnf(format, v...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	stdLogger.Errorf(format, v...)
}
