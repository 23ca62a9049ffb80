package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSink_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithSink(zapcore.AddSync(&buf), Options{Verbose: tt.verbose})
			logger.Debug("registered mapping unit", zap.String("unit", "A->B"))
			logger.Info("resolved")
			require.NoError(t, logger.Sync())

			out := buf.String()
			assert.Contains(t, out, "INFO\tresolved")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("registered mapping unit")))
		})
	}
}

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithSink(zapcore.AddSync(&buf), Options{JSON: true})
	logger.Info("resolved type mapping", zap.String("mapping", "A->B"), zap.Int("units", 2))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "resolved type mapping", entry["msg"])
	assert.Equal(t, "A->B", entry["mapping"])
	assert.InDelta(t, 2, entry["units"], 0)
}
