package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONCarriesService(t *testing.T) {
	var buf bytes.Buffer

	log, err := New("neon", "debug", "json", &buf)
	require.NoError(t, err)
	log.Debug("hello", "account_id", "1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "neon", record["service"])
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "1", record["account_id"])
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := New("neon", "warn", "text", &buf)
	require.NoError(t, err)
	log.Info("quiet")
	log.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "service=neon")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("neon", "info", "xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported log format")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
