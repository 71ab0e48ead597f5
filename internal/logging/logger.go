// Package logging provides the leveled slog logger used by the CLI and the
// frame driver.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rs/xid"
)

// LevelTrace is below Debug; per-frame driver output is logged here.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps "info", "debug" or "trace" (case-insensitive) to a level.
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled text logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// WithRun tags every record of logger with a fresh run id and returns both.
func WithRun(logger *slog.Logger) (*slog.Logger, string) {
	id := xid.New().String()
	return logger.With("run", id), id
}
