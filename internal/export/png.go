package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math"

	"fyne.io/fyne/v2"

	"PaintOverlay/internal/paint"
	"PaintOverlay/internal/render"
)

const pngPadding = 16

// Raster renders the scene into an image cropped to its strokes.
func Raster(s Scene, background color.NRGBA) (image.Image, error) {
	bounds, ok := visibleBounds(s)
	if !ok {
		return nil, ErrEmpty
	}
	size := fyne.NewSize(
		float32(math.Ceil(float64(bounds.Width())))+2*pngPadding,
		float32(math.Ceil(float64(bounds.Height())))+2*pngPadding,
	)

	var rec paint.Recorder
	s.Paint(&rec, paint.Pt(pngPadding, pngPadding).Sub(bounds.Min))

	objects := append([]fyne.CanvasObject{render.Background(background, size)},
		render.Segments(rec.Commands, paint.Point{})...)
	return render.Rasterize(size, objects...), nil
}

// PNG writes the scene as a PNG image.
func PNG(w io.Writer, s Scene, background color.NRGBA) error {
	img, err := Raster(s, background)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	log.Printf("[EXPORT] PNG written (%dx%d)", img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
