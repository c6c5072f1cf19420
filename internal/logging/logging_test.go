package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", FormatJSON)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("model opened", "vertices", 14)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "model opened", entry["msg"])
	assert.InDelta(t, 14, entry["vertices"], 0)
}

func TestNew_TextWithoutColorForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", FormatText)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("failed to load bookmarks", "error", "disk")

	out := buf.String()
	assert.Contains(t, out, "failed to load bookmarks")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", FormatPlain)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
