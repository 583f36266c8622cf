// log package provides the process wide logger. It only shows warnings and
// errors, to get the progress messages, use the -v flag
package log

import (
	"log/slog"
	"os"
)

var (
	level  = new(slog.LevelVar)
	logger *slog.Logger
)

func init() {
	// set the log output to stderr
	level.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func GetLogger() *slog.Logger {
	return logger
}

// SetVerbose sets the verbose mode.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}
