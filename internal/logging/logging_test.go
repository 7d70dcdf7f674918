package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigTransportLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.Equal(t, tt.expected, Config{Level: tt.level}.TransportLevel())
		})
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, DefaultConfig())

	log.Debug("hidden")
	log.Info("processed", zap.String("input", "a.jpg"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.HasPrefix(out, "INFO processed"), out)
	require.Contains(t, out, `"input": "a.jpg"`)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "debug", Format: "json"})

	log.Debug("skip", zap.String("output", "out/a.jpg"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "skip", entry["message"])
	require.Equal(t, "out/a.jpg", entry["output"])
}

func TestConfigValidate(t *testing.T) {
	for _, format := range []string{"console", "json", "JSON"} {
		require.NoError(t, Config{Format: format}.Validate(), format)
	}

	err := Config{Format: "jsn"}.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `"jsn"`)

	require.Error(t, Config{}.Validate())
}
