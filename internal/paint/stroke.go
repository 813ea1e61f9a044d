package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// MinStrokeWidth is the smallest width a Stroke may carry.
const MinStrokeWidth = 0.1

// LightBlue is the default stroke color.
var LightBlue = color.NRGBA{R: 173, G: 216, B: 230, A: 255}

// Stroke is the shared line style applied to every polyline at draw time.
type Stroke struct {
	Width float32
	Color color.NRGBA
}

func DefaultStroke() Stroke {
	return Stroke{Width: 1.0, Color: LightBlue}
}

// Normalized returns s with the width clamped to MinStrokeWidth.
func (s Stroke) Normalized() Stroke {
	if s.Width < MinStrokeWidth {
		s.Width = MinStrokeWidth
	}
	return s
}

// ParseHexColor accepts "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// HexColor formats c as "#rrggbbaa".
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
