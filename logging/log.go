// Package logging writes the append-only daily run log plus a pretty console
// mirror. The file format is fixed: "2006-01-02 15:04:05 [LEVEL] message".
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

type Logger struct {
	mu      sync.Mutex
	file    *os.File
	console *slog.Logger
}

// New opens (creating as needed) logs/daily.log under dir for appending.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "daily.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open daily.log: %w", err)
	}
	console := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
	return &Logger{file: f, console: console}, nil
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Write appends one leveled line to daily.log and mirrors it to the console.
// Log failures are swallowed: logging must never take the pipeline down.
func (l *Logger) Write(level, message string) {
	l.mu.Lock()
	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), level, message)
	_, _ = l.file.WriteString(line)
	l.mu.Unlock()

	switch level {
	case "ERROR":
		l.console.Error(message)
	case "WARN":
		l.console.Warn(message)
	default:
		l.console.Info(message)
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.Write("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.Write("WARN", fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.Write("ERROR", fmt.Sprintf(format, args...))
}

// Start records the beginning of a pipeline run.
func (l *Logger) Start(runID string) {
	l.Info("Pipeline started | run=%s", runID)
}

// Success records a completed run with both output paths.
func (l *Logger) Success(videoPath, captionPath string) {
	l.Info("SUCCESS | video=%s | caption=%s", videoPath, captionPath)
}

// Skip records a run that did nothing because today's output already exists.
func (l *Logger) Skip(reason string) {
	l.Info("SKIP | %s", reason)
}
