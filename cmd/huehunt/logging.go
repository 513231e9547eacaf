package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huehunt/internal/config"
)

// newLogger builds a leveled logger writing to w.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// playLogger returns the logger for local play. The terminal belongs to the
// game, so logs go to --log-file or nowhere. The returned close func is never nil.
func playLogger(cfg config.LogConfig) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, cfg, "huehunt")
		return logger, noop, err
	}

	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		return nil, noop, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, cfg, "huehunt")
	if err != nil {
		//nolint:errcheck // Already failing
		f.Close()
		return nil, noop, err
	}
	return logger, f.Close, nil
}
