package config

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"PaintOverlay/internal/paint"
)

//go:embed default/config.toml
var configFS embed.FS

type Config struct {
	Window    WindowConfig    `toml:"window"`
	SidePanel SidePanelConfig `toml:"side_panel"`
	Painting  PaintingConfig  `toml:"painting"`
	Export    ExportConfig    `toml:"export"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Scale  float32 `toml:"scale"`
}

type SidePanelConfig struct {
	Width    float32 `toml:"width"`
	ValueMin float64 `toml:"value_min"`
	ValueMax float64 `toml:"value_max"`
}

type PaintingConfig struct {
	StrokeWidth float32 `toml:"stroke_width"`
	StrokeColor string  `toml:"stroke_color"`
	CanvasColor string  `toml:"canvas_color"`
}

type ExportConfig struct {
	Background string `toml:"background"`
	PageSize   string `toml:"page_size"`
}

var pageSizes = []string{"A3", "A4", "A5", "Letter", "Legal"}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale < 0 {
		errs = append(errs, fmt.Errorf("window scale must not be negative, got %v", c.Window.Scale))
	}
	if c.SidePanel.ValueMin >= c.SidePanel.ValueMax {
		errs = append(errs, fmt.Errorf("side_panel value range [%v, %v] is empty", c.SidePanel.ValueMin, c.SidePanel.ValueMax))
	}
	if c.Painting.StrokeWidth < paint.MinStrokeWidth {
		errs = append(errs, fmt.Errorf("painting stroke_width must be at least %v, got %v", paint.MinStrokeWidth, c.Painting.StrokeWidth))
	}
	for name, v := range map[string]string{
		"painting.stroke_color": c.Painting.StrokeColor,
		"painting.canvas_color": c.Painting.CanvasColor,
		"export.background":     c.Export.Background,
	} {
		if _, err := paint.ParseHexColor(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if !validPageSize(c.Export.PageSize) {
		errs = append(errs, fmt.Errorf("export page_size %q is not one of %s", c.Export.PageSize, strings.Join(pageSizes, ", ")))
	}
	return errors.Join(errs...)
}

func validPageSize(s string) bool {
	for _, p := range pageSizes {
		if strings.EqualFold(p, s) {
			return true
		}
	}
	return false
}

// Stroke returns the initial painting stroke. Call Validate first.
func (c *Config) Stroke() paint.Stroke {
	col, err := paint.ParseHexColor(c.Painting.StrokeColor)
	if err != nil {
		col = paint.LightBlue
	}
	return paint.Stroke{Width: c.Painting.StrokeWidth, Color: col}.Normalized()
}

func (c *Config) CanvasColor() color.NRGBA {
	return mustColor(c.Painting.CanvasColor)
}

func (c *Config) ExportBackground() color.NRGBA {
	return mustColor(c.Export.Background)
}

func mustColor(s string) color.NRGBA {
	col, err := paint.ParseHexColor(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return col
}
