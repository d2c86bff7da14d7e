package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process-wide logger. Production gets JSON output at
// info level, everything else gets text output with debug enabled.
func Init(environment string) {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
