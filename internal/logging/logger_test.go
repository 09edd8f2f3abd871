package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"loud", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.in, zerolog.WarnLevel))
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := ConfigFromEnv(DefaultConfig())

	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestConfigFromEnv_IgnoresUnknownFormat(t *testing.T) {
	t.Setenv(EnvLogFormat, "xml")

	cfg := ConfigFromEnv(DefaultConfig())

	assert.Equal(t, "console", cfg.Format)
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithComponent(WithContext(context.Background(), logger), "collapse-pane")

	FromContext(ctx).Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"collapse-pane"`)
}

func TestSessionFilenameRoundTrip(t *testing.T) {
	id := GenerateSessionID()

	got, ok := ParseSessionFilename(SessionFilename(id))

	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = ParseSessionFilename("session_.log")
	assert.False(t, ok)
	_, ok = ParseSessionFilename("other.txt")
	assert.False(t, ok)
}

func TestOpenSessionLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := OpenSessionLog(dir, "20250101_000000_abcd")
	require.NoError(t, err)
	_, err = f.WriteString("line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "session_20250101_000000_abcd.log"))
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
