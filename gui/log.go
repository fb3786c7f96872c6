package gui

import (
	"context"
	"log/slog"
	"os"
)

// logLevel gates the package's diagnostics. Debug output (widget
// activations, actions, parsed stylesheets) is off unless SetVerbose.
var logLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})).
	With("pkg", "gui")

// SetVerbose switches the gui logger between Debug and Info.
func SetVerbose(v bool) {
	level := slog.LevelInfo
	if v {
		level = slog.LevelDebug
	}
	logLevel.Set(level)
}

func guiVerbose() bool {
	return guiLogger.Enabled(context.Background(), slog.LevelDebug)
}
