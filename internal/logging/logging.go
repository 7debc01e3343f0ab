// Package logging builds the application's structured logger.
//
// The TUI owns the terminal, so records go to a file only. Without a path the
// logger discards everything.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Options struct {
	// Path is the full log file path; parent directories are created.
	Path  string
	Level string
}

// Logger wraps a slog.Logger with the file handle it writes to.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New opens the log sink described by opts. If the file cannot be opened
// the returned logger discards output and err explains why.
func New(opts Options) (*Logger, error) {
	lv := &slog.LevelVar{}
	lv.Set(ParseLevel(opts.Level))

	var (
		w    io.Writer = io.Discard
		f    *os.File
		oerr error
	)
	if p := strings.TrimSpace(opts.Path); p != "" {
		f, oerr = openLogFile(p)
		if oerr == nil {
			w = f
		}
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lv,
		AddSource: false,
	})
	return &Logger{Logger: slog.New(h), file: f}, oerr
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
