package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dougbrunos/go-rest-apis/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLine decodes a single JSON log record from the buffer.
func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestSetupLogLevels(t *testing.T) {
	tests := []struct {
		name         string
		configured   string
		debugVisible bool
		warnVisible  bool
	}{
		{name: "debug level shows everything", configured: "debug", debugVisible: true, warnVisible: true},
		{name: "info level hides debug", configured: "info", debugVisible: false, warnVisible: true},
		{name: "error level hides warn", configured: "error", debugVisible: false, warnVisible: false},
		{name: "unknown level falls back to info", configured: "verbose", debugVisible: false, warnVisible: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := setup(config.ServerConfig{LogLevel: tc.configured}, &buf)
			require.NotNil(t, log)

			log.Debug("debug message")
			assert.Equal(t, tc.debugVisible, buf.Len() > 0, "debug visibility mismatch")

			buf.Reset()
			log.Warn("warn message")
			assert.Equal(t, tc.warnVisible, buf.Len() > 0, "warn visibility mismatch")
		})
	}
}

func TestSetupProducesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := setup(config.ServerConfig{LogLevel: "info"}, &buf)

	log.Info("hello", slog.String("key", "value"))

	entry := logLine(t, &buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestContextRoundTrip(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx), "context should return the attached logger")
	assert.Same(t, log, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallback(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx), "bare context carries no logger")

	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.NotNil(t, FromContextOrDefault(ctx, nil), "nil fallback should yield slog.Default")
}
