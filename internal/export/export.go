package export

import (
	"errors"

	"PaintOverlay/internal/paint"
)

// ErrEmpty is returned when there is nothing visible to export.
var ErrEmpty = errors.New("drawing is empty")

// Scene is anything that can paint itself, such as a *paint.Painting.
type Scene interface {
	Paint(p paint.Painter, origin paint.Point)
}

// transform maps canvas-local points into the output's coordinate space.
type transform struct {
	scale  float64
	offset paint.Point
	min    paint.Point
}

func (t transform) apply(p paint.Point) (float64, float64) {
	return float64(p.X-t.min.X)*t.scale + float64(t.offset.X),
		float64(p.Y-t.min.Y)*t.scale + float64(t.offset.Y)
}

// visibleBounds is the box around the polylines the scene actually paints,
// grown by the widest stroke so round caps are not clipped. Points of lines
// too short to be drawn do not count.
func visibleBounds(s Scene) (paint.Rect, bool) {
	var rec paint.Recorder
	s.Paint(&rec, paint.Point{})
	if len(rec.Commands) == 0 {
		return paint.Rect{}, false
	}
	first := rec.Commands[0].Points[0]
	r := paint.Rect{Min: first, Max: first}
	var pad float32
	for _, c := range rec.Commands {
		pad = max(pad, c.Stroke.Width/2)
		for _, pt := range c.Points {
			r.Min.X = min(r.Min.X, pt.X)
			r.Min.Y = min(r.Min.Y, pt.Y)
			r.Max.X = max(r.Max.X, pt.X)
			r.Max.Y = max(r.Max.Y, pt.Y)
		}
	}
	r.Min = r.Min.Sub(paint.Pt(pad, pad))
	r.Max = r.Max.Add(paint.Pt(pad, pad))
	return r, true
}
