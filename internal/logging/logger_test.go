package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, logging.ValidLevel("debug"))
	assert.False(t, logging.ValidLevel("loud"))
}

func TestNew_JSONFormatWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := logging.New(cfg)
	logger.Info().Str("url", "https://example.org").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["message"])
	assert.Equal(t, "https://example.org", entry["url"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_LevelFiltersLowerEvents(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.WarnLevel
	cfg.Output = &buf

	logger := logging.New(cfg)
	logger.Debug().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := logging.WithContext(context.Background(), logging.New(cfg))
	ctx = logging.WithComponent(ctx, "watchdog")
	ctx = logging.WithSession(ctx, "20260101_080000_abcd")
	logging.FromContext(ctx).Info().Msg("tick")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "watchdog", entry["component"])
	assert.Equal(t, "20260101_080000_abcd", entry["session"])
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("discarded")
}
