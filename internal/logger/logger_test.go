package logger

import (
	"testing"

	"craftify/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { _ = Initialize(config.LoggerConfig{}) })

	tests := []struct {
		name      string
		cfg       config.LoggerConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "defaults to info", cfg: config.LoggerConfig{}, wantLevel: zapcore.InfoLevel},
		{name: "debug console", cfg: config.LoggerConfig{Env: "development", Level: "debug"}, wantLevel: zapcore.DebugLevel},
		{name: "production json", cfg: config.LoggerConfig{Env: "production", Level: "warn"}, wantLevel: zapcore.WarnLevel},
		{name: "unknown level", cfg: config.LoggerConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, Get().Core().Enabled(tt.wantLevel))
			assert.False(t, Get().Core().Enabled(tt.wantLevel-1))
		})
	}
}
