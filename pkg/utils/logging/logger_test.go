package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/blockrelay/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected logging.Format
		wantErr  bool
	}{
		{"", logging.FormatAuto, false},
		{"auto", logging.FormatAuto, false},
		{"console", logging.FormatConsole, false},
		{"JSON", logging.FormatJSON, false},
		{"xml", logging.FormatAuto, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := logging.ParseFormat(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tc.expected)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("unknown"), slog.LevelInfo)
}

func TestNewLogger(t *testing.T) {
	t.Run("non-terminal writer gets JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf)
		logger.Debug("hidden")
		logger.Info("visible", "guid", "ABC-123")

		out := buf.String()
		gt.False(t, strings.Contains(out, "hidden"))
		gt.S(t, out).Contains(`"msg":"visible"`)
		gt.S(t, out).Contains(`"guid":"ABC-123"`)
	})

	t.Run("secrets are redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatJSON)
		logger.Info("login", "password", "hunter2", "panel_pass", "hunter3", "username", "admin")

		out := buf.String()
		gt.False(t, strings.Contains(out, "hunter2"))
		gt.False(t, strings.Contains(out, "hunter3"))
		gt.S(t, out).Contains(`"username":"admin"`)
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.Info("console message")
		gt.S(t, buf.String()).Contains("console message")
	})

	t.Run("console format redacts secrets", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.With("panel_pass", "hunter4").Info("login", "password", "hunter2")

		out := buf.String()
		gt.S(t, out).Contains("login")
		gt.False(t, strings.Contains(out, "hunter2"))
		gt.False(t, strings.Contains(out, "hunter4"))
	})

	t.Run("secrets inside groups are redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatJSON)
		logger.Info("config", slog.Group("panel", slog.String("password", "hunter5"), slog.String("user", "admin")))

		out := buf.String()
		gt.False(t, strings.Contains(out, "hunter5"))
		gt.S(t, out).Contains(`"user":"admin"`)
	})
}
