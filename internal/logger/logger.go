// Package logger wires zerolog to stderr and a rotated log file.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the root logger: console output for operators plus a
// size-rotated file. level falls back to info when unrecognized.
func New(path, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	writers := []io.Writer{console}
	if path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		})
	}

	return zerolog.New(io.MultiWriter(writers...)).Level(lvl).With().Timestamp().Logger()
}

// For returns a child logger tagged with a component name.
func For(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
