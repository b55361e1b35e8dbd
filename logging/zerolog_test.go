package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestZerologLogger_EmitsStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "debug")

	l.Info(context.Background(), "dispatching request", "method", "GET", "path", "/trips")

	m := lastLine(t, &buf)
	require.Equal(t, "info", m["level"])
	require.Equal(t, "dispatching request", m["message"])
	require.Equal(t, "GET", m["method"])
	require.Equal(t, "/trips", m["path"])
	require.Contains(t, m, "time")
}

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "warn")

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden too")
	require.Zero(t, buf.Len())

	l.Warn(context.Background(), "visible")
	require.Equal(t, "visible", lastLine(t, &buf)["message"])
}

func TestZerologLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "chatty")

	l.Debug(context.Background(), "hidden")
	require.Zero(t, buf.Len())
	l.Info(context.Background(), "visible")
	require.NotZero(t, buf.Len())
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "info").With("component", "client")

	l.Error(context.Background(), "boom")

	m := lastLine(t, &buf)
	require.Equal(t, "client", m["component"])
	require.Equal(t, "error", m["level"])
}

func TestZerologLogger_SkipsNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "info")

	l.Info(context.Background(), "odd args", 42, "ignored", "status", 200)

	m := lastLine(t, &buf)
	require.Equal(t, float64(200), m["status"])
	require.NotContains(t, m, "42")
}

func TestNop_DoesNothing(t *testing.T) {
	l := Nop()
	l.Debug(context.Background(), "x")
	l.Info(context.Background(), "x")
	l.Warn(context.Background(), "x")
	l.Error(context.Background(), "x")
	require.NotNil(t, l.With("a", 1))
}
