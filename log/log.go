package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"maragu.dev/errors"
)

type NewLoggerOptions struct {
	JSON   bool
	Level  slog.Level
	NoTime bool
	// Writer to log to. Defaults to [os.Stderr].
	Writer io.Writer
}

func NewLogger(opts NewLoggerOptions) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 && opts.NoTime {
				return slog.Attr{}
			}
			return a
		},
	}

	if opts.JSON {
		return slog.New(slog.NewJSONHandler(opts.Writer, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(opts.Writer, handlerOpts))
}

// ParseLevel from one of debug, info, warn, or error, case-insensitively.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Newf("invalid log level %q", level)
	}
}
