package app

import (
    "io"
    "log/slog"
    "os"
    "strings"

    "chaincarbon/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. "json" is meant for deployments, anything else gets the text
// handler with source locations.
func NewLogger(cfg config.LogConfig) *slog.Logger {
    logger := newLogger(os.Stderr, cfg)
    slog.SetDefault(logger)
    return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
    opts := &slog.HandlerOptions{
        Level:     parseLevel(cfg.Level),
        AddSource: !strings.EqualFold(cfg.Format, "json"),
    }
    var handler slog.Handler
    if strings.EqualFold(cfg.Format, "json") {
        handler = slog.NewJSONHandler(w, opts)
    } else {
        handler = slog.NewTextHandler(w, opts)
    }
    return slog.New(handler).With("service", "chaincarbon")
}

func parseLevel(s string) slog.Level {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "debug":
        return slog.LevelDebug
    case "warn", "warning":
        return slog.LevelWarn
    case "error":
        return slog.LevelError
    default:
        return slog.LevelInfo
    }
}
