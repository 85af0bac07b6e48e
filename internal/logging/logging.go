// Package logging sets up the application's zerolog logger. The terminal is
// owned by the UI, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "airwaves"
	logFileName = "airwaves.log"
)

// Open creates a logger writing to path, or to the default state file when
// path is empty. The returned closer releases the file.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if path == "" {
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, lvl), f, nil
}

// New builds a timestamped logger on w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a configured level name to a zerolog level. An empty name
// selects info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return lvl, nil
}
