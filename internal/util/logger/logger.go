package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	loggerInstance *slog.Logger
	once           sync.Once
)

// GetLogger returns the process-wide structured logger
func GetLogger() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		if os.Getenv("LOG_LEVEL") == "debug" {
			level = slog.LevelDebug
		}

		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})

		loggerInstance = slog.New(handler)
	})

	return loggerInstance
}
