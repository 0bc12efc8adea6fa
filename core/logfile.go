package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	LogDir      = "logs"
	LogFileName = "balloon.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// OpenLogFile prepares dir/LogFileName for appending, rotating it when larger than MaxLogSize
// With enabled false the logger is muted and nil is returned
func OpenLogFile(dir string, enabled bool) (*os.File, error) {
	if !enabled {
		SetLogOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("balloon-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	SetLogOutput(f)
	return f, nil
}
