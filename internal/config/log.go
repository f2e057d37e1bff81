package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level for the application.
func SetLogLevel() {
	SetLogOutput(os.Stderr)
}

// SetLogOutput installs the default logger writing to w, using the level from LOG_LEVEL.
// Terminal front ends use it to keep log lines off the screen they draw on.
func SetLogOutput(w io.Writer) {
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToUpper(envLevel) {
		case "DEBUG":
			level = slog.LevelDebug
		case "INFO":
			level = slog.LevelInfo
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		default:
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
