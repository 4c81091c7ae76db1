package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/walkthrough.txt"

// Config selects where and how much the logger writes.
type Config struct {
	Path   string    // log file; empty disables the file
	Level  string    // debug, info, warn, error
	Output io.Writer // optional mirror, e.g. os.Stderr
}

// Logger keeps every line in memory for the console and appends it to a file on disk.
// Structured calls (Info, Warn, ...) go through slog and land in the same place.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	out   io.Writer
	sl    *slog.Logger
}

// New returns a Logger and ensures the log directory exists.
func New(cfg Config) *Logger {
	if cfg.Path != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.Path), 0755)
	}
	l := &Logger{lines: make([]string, 0), path: cfg.Path, out: cfg.Output}
	l.sl = slog.New(&consoleHandler{w: l, level: parseLevel(cfg.Level)})
	return l
}

// InMemory returns a Logger that keeps every line in memory and writes no file.
func InMemory() *Logger {
	return New(Config{Level: "debug"})
}

// Slog exposes the structured logger, e.g. for slog.SetDefault.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}

// Log records a plain line (console input, command output) prefixed with the time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = l.Write([]byte("[" + ts + "] " + line + "\n"))
}

func (l *Logger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.sl.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sl.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

// Write implements io.Writer. Each newline-terminated line is stored, mirrored and
// appended to the log file.
func (l *Logger) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	l.mu.Lock()
	l.lines = append(l.lines, strings.Split(text, "\n")...)
	out := l.out
	l.mu.Unlock()

	if out != nil {
		_, _ = out.Write(p)
	}
	if l.path == "" {
		return len(p), nil
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return len(p), nil
	}
	_, _ = f.Write(p)
	_ = f.Close()
	return len(p), nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
