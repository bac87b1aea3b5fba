package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"error", "", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		log, err := New(tt.level, tt.format)
		require.NoError(t, err, tt.level)
		assert.True(t, log.Core().Enabled(tt.want), tt.level)
		assert.False(t, log.Core().Enabled(tt.want-1), tt.level)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)
}
