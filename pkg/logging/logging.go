package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/limbo/tenminute/pkg/cleanup"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps debug, info, warn and error onto slog levels. Anything else
// is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger. Records go to stderr and, when file
// is not empty, to a size-rotated log file as well.
func Setup(level, file string) *slog.Logger {
	var w io.Writer = os.Stderr
	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cleanup.Register(&cleanup.Job{Name: "closing log file", F: rotating.Close})
		w = io.MultiWriter(os.Stderr, rotating)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}
