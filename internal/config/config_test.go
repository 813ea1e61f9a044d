package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PaintOverlay/internal/paint"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, float32(200), c.SidePanel.Width)
	assert.Equal(t, 10.0, c.SidePanel.ValueMax)
	assert.Equal(t, paint.DefaultStroke(), c.Stroke())
	assert.Equal(t, color.NRGBA{R: 10, G: 10, B: 10, A: 255}, c.CanvasColor())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	content := `
[painting]
stroke_width = 3.5
stroke_color = "#ff000080"

[window]
title = "Scratch"
`
	require.NoError(t, c.Load(content))
	require.NoError(t, c.Validate())

	assert.Equal(t, "Scratch", c.Window.Title)
	assert.Equal(t, float32(1280), c.Window.Width)
	assert.Equal(t, paint.Stroke{Width: 3.5, Color: color.NRGBA{R: 255, A: 128}}, c.Stroke())
}

func TestLoad_InvalidToml(t *testing.T) {
	c := &Config{}
	assert.Error(t, c.Load("[painting\nstroke_width = "))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stroke width", func(c *Config) { c.Painting.StrokeWidth = 0 }},
		{"stroke width below minimum", func(c *Config) { c.Painting.StrokeWidth = 0.05 }},
		{"bad stroke color", func(c *Config) { c.Painting.StrokeColor = "blue" }},
		{"bad canvas color", func(c *Config) { c.Painting.CanvasColor = "#12" }},
		{"empty value range", func(c *Config) { c.SidePanel.ValueMin = 10 }},
		{"negative scale", func(c *Config) { c.Window.Scale = -1 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"unknown page size", func(c *Config) { c.Export.PageSize = "B7" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default()
			require.NoError(t, err)
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	t.Run("minimum stroke width", func(t *testing.T) {
		c, err := Default()
		require.NoError(t, err)
		c.Painting.StrokeWidth = paint.MinStrokeWidth
		assert.NoError(t, c.Validate())
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		c, err := LoadFile(filepath.Join(dir, "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, "Fyne Template", c.Window.Title)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[painting]\nstroke_width = -2\n"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "stroke_width")
	})

	t.Run("config dir from environment", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[export]\npage_size = \"Letter\"\n"), 0o644))
		t.Setenv("PAINTOVERLAY_CONFIG_DIR", dir)
		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "Letter", c.Export.PageSize)
	})
}
