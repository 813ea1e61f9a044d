package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PaintOverlay/internal/paint"
	"PaintOverlay/internal/render"
)

// PaintCanvas is the drawing surface. It records pointer state from fyne
// events and hands it to a paint.Painting once per frame through
// AllocatePainter. Coordinates are widget-local, so the allocated rect
// always starts at the origin.
type PaintCanvas struct {
	widget.BaseWidget
	background color.Color

	pointer    fyne.Position
	hasPointer bool
	pressed    bool
	dragging   bool

	frame paint.Recorder
	shown paint.Recorder
}

var _ fyne.Widget = (*PaintCanvas)(nil)
var _ fyne.Draggable = (*PaintCanvas)(nil)
var _ desktop.Mouseable = (*PaintCanvas)(nil)
var _ desktop.Hoverable = (*PaintCanvas)(nil)
var _ paint.Canvas = (*PaintCanvas)(nil)

func NewPaintCanvas(background color.Color) *PaintCanvas {
	c := &PaintCanvas{background: background}
	c.ExtendBaseWidget(c)
	return c
}

func (c *PaintCanvas) AllocatePainter() (paint.Response, paint.Painter) {
	size := c.Size()
	resp := paint.Response{
		Rect:    paint.Rect{Max: paint.Pt(size.Width, size.Height)},
		Dragged: c.pressed || c.dragging,
	}
	if c.hasPointer {
		resp.Pointer = paint.Pt(c.pointer.X, c.pointer.Y)
		resp.HasPointer = true
	}
	c.frame.Reset()
	return resp, &c.frame
}

// EndFrame publishes the commands painted this frame. The widget is only
// refreshed when they differ from what is on screen.
func (c *PaintCanvas) EndFrame() bool {
	if c.frame.Equal(&c.shown) {
		return false
	}
	c.shown.Commands = append(c.shown.Commands[:0], c.frame.Commands...)
	c.Refresh()
	return true
}

func (c *PaintCanvas) track(pos fyne.Position) {
	c.pointer = pos
	c.hasPointer = true
}

func (c *PaintCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		c.pressed = true
		c.track(e.Position)
	}
}

func (c *PaintCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		c.pressed = false
		c.track(e.Position)
	}
}

func (c *PaintCanvas) MouseIn(e *desktop.MouseEvent) { c.track(e.Position) }

func (c *PaintCanvas) MouseMoved(e *desktop.MouseEvent) { c.track(e.Position) }

func (c *PaintCanvas) MouseOut() {
	// a drag keeps reporting positions through Dragged
	if !c.pressed && !c.dragging {
		c.hasPointer = false
	}
}

// Dragged also covers touch input, which has no Mouseable events.
func (c *PaintCanvas) Dragged(e *fyne.DragEvent) {
	c.dragging = true
	c.track(e.Position)
}

func (c *PaintCanvas) DragEnd() {
	c.dragging = false
	c.pressed = false
}

func (c *PaintCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &paintCanvasRenderer{canvas: c}
	r.background = canvas.NewRectangle(c.background)
	r.rebuild()
	return r
}

type paintCanvasRenderer struct {
	canvas     *PaintCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject

	// segments already built, by line ID
	lines map[string]*lineObjects
}

type lineObjects struct {
	stroke  paint.Stroke
	points  int
	objects []fyne.CanvasObject
}

// rebuild reuses the segments of every line seen last time. Lines only
// grow, so a longer line just gets segments for its new points. Anything
// else about a line changing (its stroke) means building it again.
func (r *paintCanvasRenderer) rebuild() {
	next := make(map[string]*lineObjects, len(r.canvas.shown.Commands))
	objects := []fyne.CanvasObject{r.background}
	for _, pl := range r.canvas.shown.Commands {
		lo := r.lines[pl.LineID]
		switch {
		case lo == nil || lo.stroke != pl.Stroke || len(pl.Points) < lo.points:
			lo = &lineObjects{
				stroke:  pl.Stroke,
				points:  len(pl.Points),
				objects: render.Polyline(pl, paint.Point{}),
			}
		case len(pl.Points) > lo.points:
			tail := paint.Polyline{Points: pl.Points[lo.points-1:], Stroke: pl.Stroke}
			lo.objects = append(lo.objects, render.Polyline(tail, paint.Point{})...)
			lo.points = len(pl.Points)
		}
		next[pl.LineID] = lo
		objects = append(objects, lo.objects...)
	}
	r.lines = next
	r.objects = objects
}

func (r *paintCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *paintCanvasRenderer) Refresh() {
	r.background.FillColor = r.canvas.background
	r.rebuild()
	canvas.Refresh(r.canvas)
}

func (r *paintCanvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *paintCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *paintCanvasRenderer) Destroy() {}
