// Package logger builds the charmbracelet/log loggers used by the CLI.
//
// The game owns the terminal while it runs, so local sessions log to a
// file. The SSH server logs to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neblox/internal/config"
)

// DefaultPath is where local sessions write their log.
const DefaultPath = "~/.neblox/neblox.log"

// ParseLevel maps a --log-level value to a level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logger: unknown level %q", s)
	}
	return lvl, nil
}

// New returns a logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenFile returns a logger appending to path, creating parent
// directories. The caller closes the returned file.
func OpenFile(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logger: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: cannot open %s: %w", path, err)
	}

	return New(f, prefix, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
