// Package logging configures the global logrus logger. The TUI owns the
// terminal, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Setup configures the global logger to write to the given file at the
// given level. An empty path falls back to DefaultLogPath. The returned
// closer flushes and closes the log file.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return f, nil
}

// DefaultLogPath returns the log location: $XDG_STATE_HOME/zukan/zukan.log
// or ~/.local/state/zukan/zukan.log.
func DefaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "zukan", "zukan.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "zukan.log")
	}
	return filepath.Join(home, ".local", "state", "zukan", "zukan.log")
}
