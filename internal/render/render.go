// Package render turns paint commands into fyne canvas objects and
// rasterizes them off screen.
package render

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"

	"PaintOverlay/internal/paint"
)

// Segments converts polylines to line segments, shifted by offset. fyne
// has no polyline primitive.
func Segments(cmds []paint.Polyline, offset paint.Point) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for _, pl := range cmds {
		objects = append(objects, Polyline(pl, offset)...)
	}
	return objects
}

// Polyline returns one segment per consecutive pair of points.
func Polyline(pl paint.Polyline, offset paint.Point) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for i := 1; i < len(pl.Points); i++ {
		a, b := pl.Points[i-1].Add(offset), pl.Points[i].Add(offset)
		seg := canvas.NewLine(pl.Stroke.Color)
		seg.StrokeWidth = pl.Stroke.Width
		seg.Position1 = fyne.NewPos(a.X, a.Y)
		seg.Position2 = fyne.NewPos(b.X, b.Y)
		objects = append(objects, seg)
	}
	return objects
}

// Background returns a rectangle filling size.
func Background(c color.Color, size fyne.Size) *canvas.Rectangle {
	bg := canvas.NewRectangle(c)
	bg.Move(fyne.NewPos(0, 0))
	bg.Resize(size)
	return bg
}

// Rasterize paints objects, positioned absolutely, onto an image of the
// given size using fyne's software painter.
func Rasterize(size fyne.Size, objects ...fyne.CanvasObject) image.Image {
	c := software.NewCanvas()
	c.SetPadded(false)
	c.SetContent(container.NewWithoutLayout(objects...))
	c.Resize(size)
	return c.Capture()
}
