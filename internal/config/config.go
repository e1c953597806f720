package config

import (
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/grafika/grafika/internal/engine"
	"github.com/grafika/grafika/internal/shape"
)

// Config holds the editor and dev server settings, read from GRAFIKA_*
// environment variables.
type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	StaticDir      string `envconfig:"STATIC_DIR" default:"./web"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080,http://localhost:5173"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`

	CanvasWidth        int     `envconfig:"CANVAS_WIDTH" default:"800"`
	CanvasHeight       int     `envconfig:"CANVAS_HEIGHT" default:"600"`
	HandleSize         float64 `envconfig:"HANDLE_SIZE" default:"8"`
	RotateHandleOffset float64 `envconfig:"ROTATE_HANDLE_OFFSET" default:"20"`

	DefaultFill        string  `envconfig:"DEFAULT_FILL" default:"#000000"`
	DefaultStroke      string  `envconfig:"DEFAULT_STROKE" default:"#000000"`
	DefaultStrokeWidth float64 `envconfig:"DEFAULT_STROKE_WIDTH" default:"2"`
	DefaultBrushSize   float64 `envconfig:"DEFAULT_BRUSH_SIZE" default:"5"`
	DefaultBrushColor  string  `envconfig:"DEFAULT_BRUSH_COLOR" default:"#000000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GRAFIKA", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in settings without looking at the environment.
func Default() *Config {
	return &Config{
		Port:               8080,
		StaticDir:          "./web",
		AllowedOrigins:     "http://localhost:8080,http://localhost:5173",
		LogLevel:           "info",
		CanvasWidth:        800,
		CanvasHeight:       600,
		HandleSize:         8,
		RotateHandleOffset: 20,
		DefaultFill:        "#000000",
		DefaultStroke:      "#000000",
		DefaultStrokeWidth: 2,
		DefaultBrushSize:   5,
		DefaultBrushColor:  "#000000",
	}
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// EngineOptions derives the editor settings. The drawn handle radius stays
// half the hit radius.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		Metrics: shape.Metrics{
			HitRadius:    c.HandleSize,
			DrawRadius:   c.HandleSize / 2,
			RotateOffset: c.RotateHandleOffset,
		},
		Style: shape.Style{
			FillColor:     c.DefaultFill,
			FillEnabled:   true,
			StrokeColor:   c.DefaultStroke,
			StrokeEnabled: true,
			StrokeWidth:   c.DefaultStrokeWidth,
		},
		BrushSize:  c.DefaultBrushSize,
		BrushColor: c.DefaultBrushColor,
	}
}
