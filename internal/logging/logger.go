// Package logging provides the debug logger. User-facing reporting
// goes through the presenter's direct stream writes; this logger only
// exists for --debug troubleshooting and stays silent otherwise.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvDebug enables debug output without the --debug flag.
const EnvDebug = "HOWTO_DEBUG"

var (
	logger *logrus.Logger
	once   sync.Once
)

// Get returns the process-wide logger. Until EnableDebug is called
// (or HOWTO_DEBUG is set) all output is discarded.
func Get() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: false,
			FullTimestamp:    true,
		})
		if os.Getenv(EnvDebug) != "" {
			enable(logger)
		}
	})
	return logger
}

// EnableDebug routes debug-level logs to stderr. Diagnostics share
// the error stream so stdout stays parseable.
func EnableDebug() {
	enable(Get())
}

func enable(l *logrus.Logger) {
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
}
