package log_test

import (
	"log/slog"
	"strings"
	"testing"

	"maragu.dev/is"

	"maragu.dev/pager/log"
)

func TestNewLogger(t *testing.T) {
	t.Run("should log JSON without time", func(t *testing.T) {
		var b strings.Builder
		l := log.NewLogger(log.NewLoggerOptions{JSON: true, NoTime: true, Writer: &b})

		l.Info("Rendered pagination", "page", 3)

		is.Equal(t, `{"level":"INFO","msg":"Rendered pagination","page":3}`+"\n", b.String())
	})

	t.Run("should log text and skip levels below the given level", func(t *testing.T) {
		var b strings.Builder
		l := log.NewLogger(log.NewLoggerOptions{Level: slog.LevelWarn, NoTime: true, Writer: &b})

		l.Info("Hidden")
		l.Warn("Shown")

		is.Equal(t, "level=WARN msg=Shown\n", b.String())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := log.ParseLevel(test.input)
			is.NotError(t, err)
			is.Equal(t, test.expected, level)
		})
	}

	t.Run("should error on unknown levels", func(t *testing.T) {
		_, err := log.ParseLevel("loud")
		is.True(t, err != nil)
	})
}
