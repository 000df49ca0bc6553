// Package logger owns the process-wide slog sink used by the demo binaries.
// Until Init is called, every logger it hands out discards its records.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	root     = slog.New(slog.DiscardHandler)
	initDone bool
)

// Init opens path for appending and routes all records there. Calling Init
// again without Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	logFile = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	root.Info("logger initialized", "path", path)
	return nil
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// WithComponent returns the root logger with a component attribute attached.
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.With(slog.String("component", component))
}

// Logger returns the root logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root
}

// Close closes the log file. Loggers handed out earlier keep writing to the
// closed file and their records are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Reset closes the file and restores the discard state.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	initDone = false
	root = slog.New(slog.DiscardHandler)
	levelVar.Set(slog.LevelInfo)
}
