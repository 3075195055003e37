package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
)

// NewLogger builds the JSON logger used across the server. Debug level is
// enabled outside prod. When LogDir is set, output is also written to a
// size-rotated file; the returned closer flushes it.
func NewLogger(cfg *Config) (*slog.Logger, io.Closer) {
	level := slog.LevelDebug
	if cfg.Environment == "prod" {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.LogDir != "" {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "server.log"),
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     28,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
