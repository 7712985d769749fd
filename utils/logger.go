package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger()

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// SetLogLevel applies a textual level (trace, debug, info, warn, error).
// Unknown levels keep the current one.
func SetLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithError(err).Warn("unknown log level, keeping default")
		return
	}
	Log.SetLevel(parsed)
}
