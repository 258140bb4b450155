package contract

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger writes diagnostics to stderr. Report output never goes through it.
var Logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetDebug toggles debug-level logging.
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(logrus.DebugLevel)
		return
	}
	Logger.SetLevel(logrus.WarnLevel)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	Logger.WithError(err).Error(msg)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err == nil {
		Logger.Warn(msg)
		return
	}
	Logger.WithError(err).Warn(msg)
}

// LogDebug logs a debug message with alternating key/value pairs.
func LogDebug(msg string, kv ...any) {
	if !Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	Logger.WithFields(fieldsFrom(kv)).Debug(msg)
}

// fieldsFrom pairs up kv; a trailing key without a value maps to nil.
func fieldsFrom(kv []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 < len(kv) {
			fields[key] = kv[i+1]
		} else {
			fields[key] = nil
		}
	}
	return fields
}
