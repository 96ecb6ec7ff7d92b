package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		logged   []string
		dropped  []string
	}{
		{"trace", zerolog.TraceLevel, []string{"trace message", "debug message", "info message"}, nil},
		{"debug", zerolog.DebugLevel, []string{"debug message", "info message"}, []string{"trace message"}},
		{"info", zerolog.InfoLevel, []string{"info message", "warn message"}, []string{"debug message"}},
		{"warn", zerolog.WarnLevel, []string{"warn message"}, []string{"info message"}},
		{"error", zerolog.ErrorLevel, []string{"error message"}, []string{"warn message"}},
		{"invalid", zerolog.InfoLevel, []string{"info message"}, []string{"debug message"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.level, Output: &buf})
			assert.Equal(t, tt.expected, logger.GetLevel())

			logger.Trace().Msg("trace message")
			logger.Debug().Msg("debug message")
			logger.Info().Msg("info message")
			logger.Warn().Msg("warn message")
			logger.Error().Msg("error message")

			out := buf.String()
			for _, m := range tt.logged {
				assert.Contains(t, out, m)
			}
			for _, m := range tt.dropped {
				assert.NotContains(t, out, m)
			}
		})
	}
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Pretty: true, Output: &buf})

	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.NotContains(t, buf.String(), `"message"`, "pretty output is not JSON")
}

func TestNew_NilOutput(t *testing.T) {
	logger := New(Config{Level: "error", Output: nil})
	assert.NotPanics(t, func() { logger.Info().Msg("dropped") })
}

func TestNewWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithComponent(Config{Level: "info", Output: &buf}, "generate")

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"generate"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, os.Stderr, cfg.Output)
}
