package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MEKXH/requisition/internal/config"
)

// logFile is the file currently receiving log records, if any. It is kept
// open across commands that share a process, as the tests do.
var logFile struct {
	sync.Mutex
	f *os.File
}

// configureLogger installs the default slog logger from cfg.Log.
func configureLogger(cfg *config.Config, overrideLevel string, interactive bool) error {
	level, err := parseLogLevel(cfg.Log.Level, overrideLevel)
	if err != nil {
		return err
	}
	out, err := logOutput(strings.TrimSpace(cfg.Log.File), interactive)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if strings.EqualFold(strings.TrimSpace(cfg.Log.Format), "json") {
		handler = slog.NewJSONHandler(out, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// logOutput returns the destination for log records. The menu session shares
// the terminal with prompts, so without a log file its records are dropped.
func logOutput(path string, interactive bool) (io.Writer, error) {
	logFile.Lock()
	defer logFile.Unlock()

	if logFile.f != nil && logFile.f.Name() != path {
		_ = logFile.f.Close()
		logFile.f = nil
	}

	switch {
	case path != "":
		if logFile.f == nil {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return nil, fmt.Errorf("open log file: %w", err)
			}
			logFile.f = f
		}
		return logFile.f, nil
	case interactive:
		return io.Discard, nil
	default:
		return os.Stderr, nil
	}
}

func parseLogLevel(configLevel, override string) (slog.Level, error) {
	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(configLevel)
	}
	switch strings.ToLower(name) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %s", name)
}
