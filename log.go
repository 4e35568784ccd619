package gfx

import (
	"log/slog"
	"os"
)

// shaderLogLevel controls the log level for shader logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var shaderLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for shader lifecycle events.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		shaderLogLevel.Set(slog.LevelDebug)
	} else {
		shaderLogLevel.Set(slog.LevelInfo)
	}
}

// shaderLogger is the default logger for the GFXShader log group.
// Graphics instances use it unless WithLogger is given.
var shaderLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: shaderLogLevel})).
	WithGroup("GFXShader")
