// Package logging builds the hclog loggers shared by the CLI and library code.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel selects the log level (trace, debug, info, warn, error).
	EnvLogLevel = "BITMAPHELPER_LOG_LEVEL"
	// EnvJSONLog switches output to JSON when set to "1".
	EnvJSONLog = "BITMAPHELPER_JSON_LOG"

	// DefaultLevel is used when neither a flag nor the environment sets one.
	DefaultLevel = "warn"

	linePrefix = "🖼️  "
)

// NewLogger creates an hclog logger writing to output (stderr when nil).
// Plain-text output gets a per-line prefix; JSON output is left untouched.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = GetLogLevel()
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the configured log level from the environment.
func GetLogLevel() string {
	level := strings.TrimSpace(os.Getenv(EnvLogLevel))
	if level == "" {
		return DefaultLevel
	}
	return level
}

// OrNull returns logger, or a discarding logger when logger is nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
