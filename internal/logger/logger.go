// Package logger provides structured logging for agentic-tools using logrus.
// Human-facing progress lines are printed by the ui package; this logger
// carries the diagnostic detail behind them and writes to stderr.
package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// L is the global logger entry
var L = logrus.NewEntry(newLogger())

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	setLoggerFormat(l, "fmt")
	return l
}

// setLoggerFormat sets the formatter for the given logger
func setLoggerFormat(logger *logrus.Logger, format string) {
	switch format {
	case "json":
		logger.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "logLevel",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	case "text", "fmt":
		fallthrough
	default:
		logger.Formatter = &logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FullTimestamp:   true,
		}
	}
}

// SetLogLevel sets the log level for the global logger
func SetLogLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	L.Logger.SetLevel(logLevel)
	return nil
}

// SetLogFormat sets the log format for the global logger ("fmt", "text" or "json")
func SetLogFormat(format string) {
	setLoggerFormat(L.Logger, format)
}

// SetLogOutput sets the output destination for the global logger
func SetLogOutput(w io.Writer) {
	L.Logger.SetOutput(w)
}
