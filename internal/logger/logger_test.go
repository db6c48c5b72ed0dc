package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := &zapLogger{logger: zap.New(core).Sugar()}

	log.Debug("dropped")
	log.With("booking_id", "B1").Warn("show missing", "show_id", "S009")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "show missing", entries[0].Message)
	assert.Equal(t, map[string]any{"booking_id": "B1", "show_id": "S009"}, entries[0].ContextMap())
}

func TestNew(t *testing.T) {
	for _, tc := range []struct{ level, format string }{
		{"debug", "console"},
		{"info", "json"},
		{"bogus", ""},
	} {
		log := New(tc.level, tc.format)
		assert.NotNil(t, log)
		log.Info("started")
	}

	assert.NotPanics(t, func() { NewNop().Error("nothing") })
}
