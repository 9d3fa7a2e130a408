package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/directory-microservice/internal/pkg/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		env          string
		debugEnabled bool
	}{
		{name: "production json at info", level: "info", env: "production", debugEnabled: false},
		{name: "development console at debug", level: "debug", env: "development", debugEnabled: true},
		{name: "unknown level falls back to info", level: "loud", env: "production", debugEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.level, tt.env)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tt.debugEnabled, log.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
