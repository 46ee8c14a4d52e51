package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"darak/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		debugWanted bool
	}{
		{
			name:        "local environment logs debug",
			env:         config.EnvLocal,
			debugWanted: true,
		},
		{
			name:        "dev environment logs debug",
			env:         config.EnvDev,
			debugWanted: true,
		},
		{
			name:        "prod environment drops debug",
			env:         config.EnvProd,
			debugWanted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tt.debugWanted, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvProd, &buf)

	logger.Info("record saved", "record_id", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record saved", entry["msg"])
	assert.Equal(t, float64(42), entry["record_id"])
}

func TestNewWithWriter_LocalIsTextual(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvLocal, &buf)

	logger.Debug("storage ready")

	assert.Contains(t, buf.String(), "storage ready")
	assert.False(t, json.Valid(buf.Bytes()), "local output is for humans, not parsers")
}
