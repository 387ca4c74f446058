package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits shared by every rotated log file.
const (
	maxSizeMB  = 10
	maxBackups = 5
	maxAgeDays = 30
)

// Options configures NewLogger.
type Options struct {
	Service  string
	FilePath string // empty disables the file sink
	Level    string // zerolog level name, "debug" when empty
	Console  io.Writer
}

// NewLogger builds the application logger: human-readable on the console and
// JSON in a rotated file.
func NewLogger(opts Options) (zerolog.Logger, error) {
	level := zerolog.DebugLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	sinks := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}}
	if opts.FilePath != "" {
		sinks = append(sinks, rotated(opts.FilePath))
	}

	l := zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("service", opts.Service).
		Logger()

	l.Info().
		Str("file", opts.FilePath).
		Str("level", level.String()).
		Msg("logger ready")

	return l, nil
}

func rotated(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}
