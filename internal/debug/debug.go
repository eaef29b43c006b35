// Package debug provides optional file-based debug logging.
//
// When the FLEXLAY_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a
// no-op.
package debug

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.Mutex
	logger *logrus.Logger
)

// Log writes a formatted debug message. The first call initializes the
// logger from FLEXLAY_DEBUG; when the variable is unset this is a no-op.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newLogger()
	}
	logger.Debugf(format, args...)
}

// newLogger builds the shared logger. Without FLEXLAY_DEBUG (or when
// the file cannot be opened) all output is discarded.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	path := os.Getenv("FLEXLAY_DEBUG")
	if path == "" {
		l.SetOutput(io.Discard)
		return l
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.SetOutput(io.Discard)
		return l
	}
	l.SetOutput(f)
	return l
}
