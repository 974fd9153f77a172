// Package logger holds the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. It is usable as-is; Init applies
// environment configuration on top and should be called once at startup.
var Log = logrus.New()

// Init configures Log from the environment.
//
// LOG_LEVEL selects the level (default "info"; use "debug" to watch FOV
// computations). LOG_FORMAT=json switches to JSON output for log
// collection; anything else keeps the human-readable text formatter.
// LOG_FILE redirects output to a file, which keeps diagnostics off the
// terminal the game is drawing on.
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			Log.SetOutput(f)
			return
		}
		Log.WithError(err).Warn("Could not open LOG_FILE, logging to stderr.")
	}
	Log.SetOutput(os.Stderr)
}
