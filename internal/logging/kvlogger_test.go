package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "failed to parse log output")
	return entry
}

func TestKVLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKVLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	kv.Debug("test message", "key1", "value1", "key2", 42)

	entry := decode(t, &buf)
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(42), entry["key2"]) // JSON numbers are float64
}

func TestKVLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKVLogger(zerolog.New(&buf))

	kv.Info("info message", "status", "ok")

	entry := decode(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ok", entry["status"])
}

func TestKVLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKVLogger(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	kv.Info("dropped")
	kv.Error("error occurred", "code", 500, "reason", "internal")

	entry := decode(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "error occurred", entry["message"])
	assert.Equal(t, float64(500), entry["code"])
	assert.Equal(t, "internal", entry["reason"])
}

func TestKVLogger_OddAndNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKVLogger(zerolog.New(&buf))

	kv.Info("odd", 7, "skipped", "kept", true, "dangling")

	entry := decode(t, &buf)
	assert.Equal(t, true, entry["kept"])
	assert.NotContains(t, entry, "dangling")
	assert.NotContains(t, entry, "skipped")
}
