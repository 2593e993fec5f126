package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "FORMS_DEBUG"

// DefaultFile is used by Init when no path is given.
const DefaultFile = "forms-debug.log"

// logger writes timestamped lines to w. file is set when w was opened by
// open and must be closed with it.
type logger struct {
	mu      sync.Mutex
	w       io.Writer
	file    *os.File
	envOnce sync.Once
}

var std logger

// Init appends log lines to the file at path, creating its directory.
// An empty path uses DefaultFile.
func Init(path string) error {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.open(path)
}

// SetOutput sends log lines to w instead of a file. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.close()
	std.w = w
}

// Close stops logging and closes the log file, if any.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.close()
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.fromEnv()
	return std.w != nil
}

// Log writes one timestamped line.
func Log(format string, args ...any) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.fromEnv()
	std.write(time.Now(), fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

func (l *logger) open(path string) error {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	l.close()
	l.w, l.file = f, f
	return nil
}

func (l *logger) close() error {
	l.w = nil
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// fromEnv opens the FORMS_DEBUG file the first time logging is used, unless
// an output was already chosen.
func (l *logger) fromEnv() {
	l.envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" && l.w == nil {
			l.open(path)
		}
	})
}

func (l *logger) write(now time.Time, msg string) {
	if l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "[%s] %s\n", now.Format("15:04:05.000"), msg)
	if l.file != nil {
		l.file.Sync()
	}
}
