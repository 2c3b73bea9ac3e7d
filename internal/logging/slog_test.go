package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger()
	l.Info(ctx, "hello", "k", "v")
	m := lastRecord(t, buf)
	assert.Equal(t, "hello", m["msg"])
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "v", m["k"])

	l, buf = newBufLogger()
	l.Warn(ctx, "careful")
	assert.Equal(t, "WARN", lastRecord(t, buf)["level"])

	l, buf = newBufLogger()
	l.Error(ctx, "broken")
	assert.Equal(t, "ERROR", lastRecord(t, buf)["level"])
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger()
	child := l.With("component", "storage")
	child.Info(context.Background(), "ready")

	m := lastRecord(t, buf)
	assert.Equal(t, "storage", m["component"])
}
