package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/pkg/log"
)

func TestLogger_Info_WritesFieldsAndContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(log.LevelDebug, buf)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.
		With(log.Fields{"path": "/dashboard"}).
		WithError(errors.New("boom")).
		Info(ctx, "request handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request handled", entry["msg"])
	assert.Equal(t, "/dashboard", entry["path"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "abc", entry["requestID"])
}

func TestLogger_Debug_SkippedBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(log.LevelWarn, buf)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")

	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
		ok       bool
	}{
		{in: "debug", expected: log.LevelDebug, ok: true},
		{in: " WARN ", expected: log.LevelWarn, ok: true},
		{in: "disabled", expected: log.LevelDisabled, ok: true},
		{in: "verbose", ok: false},
	}

	for _, tc := range tests {
		level, ok := log.ParseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.expected, level, tc.in)
		}
	}
}
