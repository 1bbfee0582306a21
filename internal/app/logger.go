package app

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted --log-level values. Config validation keeps
// anything else out.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger creates a slog.Logger writing to errW. It does not set the
// global logger, allowing for isolated logger instances in tests. Unknown
// levels fall back to warn.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(errW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(errW, handlerOpts)
	}
	return slog.New(handler).With("app", "stangrid")
}
