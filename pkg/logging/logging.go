package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	IsJSON bool   `yaml:"is_json" env:"JSON"`
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w. Results go to stdout, so callers pass stderr.
func NewLogger(cfg *LoggerConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.IsJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h.WithAttrs(attrs))
}

func InitLogger(cfg *LoggerConfig, attrs ...slog.Attr) {
	slog.SetDefault(NewLogger(cfg, os.Stderr, attrs...))
}
