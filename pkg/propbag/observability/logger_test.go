package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferLogger returns a debug-level JSON logger writing to a buffer.
func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}

// decodeLastLine decodes the last JSON log line in buf.
func decodeLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var data map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &data))
	return data
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds accessor attribute", func(t *testing.T) {
		logger, buf := newBufferLogger()
		EnrichLogger(logger, "params").Info("hello")

		data := decodeLastLine(t, buf)
		assert.Equal(t, "hello", data["msg"])
		assert.Equal(t, "params", data["accessor"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "params"))
	})
}

func TestLogAssertionFailure(t *testing.T) {
	t.Run("logs at warn with attributes", func(t *testing.T) {
		logger, buf := newBufferLogger()
		LogAssertionFailure(logger, "has", "name", "id-1", errors.New("property (name) is missing"))

		data := decodeLastLine(t, buf)
		assert.Equal(t, "WARN", data["level"])
		assert.Equal(t, "property assertion failed", data["msg"])
		assert.Equal(t, "has", data["assertion"])
		assert.Equal(t, "name", data["key"])
		assert.Equal(t, "id-1", data["failure_id"])
		assert.Equal(t, "property (name) is missing", data["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogAssertionFailure(nil, "has", "name", "id-1", errors.New("x"))
		})
	})
}

func TestLogDiagnosticError(t *testing.T) {
	t.Run("logs at debug", func(t *testing.T) {
		logger, buf := newBufferLogger()
		LogDiagnosticError(logger, "id-2", errors.New("broken pipe"))

		data := decodeLastLine(t, buf)
		assert.Equal(t, "DEBUG", data["level"])
		assert.Equal(t, "id-2", data["failure_id"])
		assert.Equal(t, "broken pipe", data["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogDiagnosticError(nil, "id-2", errors.New("x"))
		})
	})
}
