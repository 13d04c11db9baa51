package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.Default()

// Init configures the global logger: human-readable text in development,
// JSON everywhere else.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error (or any odd trailing value)
// without breaking slog's key/value pairing.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}

	last := args[len(args)-1]
	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	if err, ok := last.(error); ok {
		return append(out, "error", err)
	}
	return append(out, "detail", last)
}
