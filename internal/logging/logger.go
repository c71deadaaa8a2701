package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger: JSON to stdout, fanned out to any
// extra handlers such as a DBHandler.
func Setup(level slog.Level, extra ...slog.Handler) {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	if len(extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, extra...)...)
	}
	slog.SetDefault(slog.New(handler))
}

// LevelFor maps APP_ENV to a log level.
func LevelFor(appEnv string) slog.Level {
	if appEnv == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
