package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"document": "dashboard.yaml", "nodes": 12})
	log.Info("layout computed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "layout computed", entry["message"])
	require.Equal(t, "dashboard.yaml", entry["document"])
	require.EqualValues(t, 12, entry["nodes"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("document", "broken.yaml")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "broken.yaml", entry["document"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("slow layout")
	require.Contains(t, buf.String(), "slow layout")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLoggerNilIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
		require.Nil(t, log.With("a", "b"))
		_ = log.Zerolog()
	})
}
