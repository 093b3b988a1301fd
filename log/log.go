// Package log wraps logrus with the process-wide logger configuration used by every
// vidplane package.
package log

import (
	"io"
	"os"

	logrus "github.com/sirupsen/logrus"
)

// Fields is an alias for structured log fields.
type Fields = logrus.Fields

// Setup configures the shared logger's severity, formatter and output.
// An unknown level falls back to info. A nil writer means stderr.
//
// Parameters:
//   - level: logrus level name ("debug", "info", "warn", ...)
//   - json: true for JSON lines, false for the text formatter
//   - out: destination for log output
func Setup(level string, json bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithField returns an entry carrying a single structured field.
func WithField(key string, value any) *logrus.Entry {
	return logrus.WithField(key, value)
}

// WithFields returns an entry carrying several structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// Severity-specific emissions proxy to the shared logger.

func Error(args ...any) {
	logrus.Error(args...)
}
func Errorf(format string, args ...any) {
	logrus.Errorf(format, args...)
}
func Warn(args ...any) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}
func Info(args ...any) {
	logrus.Info(args...)
}
func Infof(format string, args ...any) {
	logrus.Infof(format, args...)
}
func Debug(args ...any) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}
