package telemetry

import (
	"context"
	"testing"

	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{"telemetry off", config.TelemetryConfig{Enabled: false, LogExportEnabled: true}},
		{"log export off", config.TelemetryConfig{Enabled: true, CollectorEndpoint: "localhost:14317"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp, err := NewLoggerProvider(ctx, tt.cfg, testService, zap.NewNop())
			require.NoError(t, err)
			assert.False(t, lp.IsEnabled())
			assert.NoError(t, lp.Shutdown(ctx))
		})
	}
}

func TestBridge_DisabledKeepsBaseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	bridged := Bridge(base, &LoggerProvider{logger: zap.NewNop()}, "shop", zapcore.InfoLevel)

	assert.Same(t, base, bridged)
	bridged.Info("checkout completed")
	assert.Equal(t, 1, logs.Len())
}

func TestLoggerProvider_CoreDisabledIsNop(t *testing.T) {
	lp := &LoggerProvider{logger: zap.NewNop()}
	core := lp.Core("shop", zapcore.DebugLevel)
	assert.False(t, core.Enabled(zapcore.ErrorLevel))
}

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}
	logger := zap.New(core)

	logger.Info("stock lot closed by income edit")
	logger.Warn("failed to record product access")
	logger.With(zap.String("sale_id", "s-1")).Error("checkout failed")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "s-1", entries[1].ContextMap()["sale_id"])
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))
}
