package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafika/grafika/internal/engine"
)

func TestLoadDefaultsMatchDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GRAFIKA_PORT", "9090")
	t.Setenv("GRAFIKA_CANVAS_WIDTH", "1024")
	t.Setenv("GRAFIKA_DEFAULT_FILL", "#ff0000")
	t.Setenv("GRAFIKA_HANDLE_SIZE", "12.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 1024, cfg.CanvasWidth)
	assert.Equal(t, "#ff0000", cfg.DefaultFill)
	assert.Equal(t, 12.5, cfg.HandleSize)
	assert.Equal(t, 600, cfg.CanvasHeight)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("GRAFIKA_CANVAS_HEIGHT", "tall")
	_, err := Load()
	assert.Error(t, err)
}

func TestOrigins(t *testing.T) {
	cfg := &Config{AllowedOrigins: " http://a.test ,,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())

	cfg.AllowedOrigins = ""
	assert.Empty(t, cfg.Origins())
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for name, want := range tests {
		cfg := &Config{LogLevel: name}
		assert.Equal(t, want, cfg.Level(), name)
	}
}

func TestEngineOptionsMatchEngineDefaults(t *testing.T) {
	assert.Equal(t, engine.DefaultOptions(), Default().EngineOptions())
}

func TestEngineOptionsFromEnvironment(t *testing.T) {
	t.Setenv("GRAFIKA_HANDLE_SIZE", "12")
	t.Setenv("GRAFIKA_DEFAULT_STROKE_WIDTH", "3.5")

	cfg, err := Load()
	require.NoError(t, err)
	opts := cfg.EngineOptions()
	assert.Equal(t, 12.0, opts.Metrics.HitRadius)
	assert.Equal(t, 6.0, opts.Metrics.DrawRadius)
	assert.Equal(t, 3.5, opts.Style.StrokeWidth)
}
