package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "BOXTREE_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *log.Logger
)

// Logger returns the shared debug logger. On first use it opens the file
// named by BOXTREE_DEBUG; without it, records are discarded.
//
// The returned pointer stays valid across Init and Close, which only swap
// its output, so trees holding it follow the current destination.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return loggerLocked()
}

// loggerLocked creates the shared logger if needed. Caller must hold mu.
func loggerLocked() *log.Logger {
	if logger != nil {
		return logger
	}
	logger = newLogger(io.Discard)
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
	return logger
}

// Init routes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	l := loggerLocked()
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	l.SetOutput(f)
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close closes the debug log file and falls back to discarding records.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		logger.SetOutput(io.Discard)
	}
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "layout",
	})
}
