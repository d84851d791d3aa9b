package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// logPath returns where the interactive game logs. The terminal belongs to
// the game while it runs, so logs go to a file under the XDG state directory
// unless a custom path is writable.
func logPath(custom string) (string, error) {
	if custom != "" {
		if err := os.MkdirAll(filepath.Dir(custom), 0o755); err == nil {
			if f, err := os.OpenFile(custom, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
				_ = f.Close()
				return custom, nil
			}
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use log path %s, falling back to XDG default\n", custom)
	}

	path, err := xdg.StateFile("garden/garden.log")
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}
	return path, nil
}

// setupLogging opens the log file and builds the logger. When the file
// cannot be opened, logs are discarded and the error is returned.
func setupLogging(level, custom string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	path, err := logPath(custom)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), fmt.Errorf("could not open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "garden",
		Level:           lvl,
	})
	return logger, f, nil
}
