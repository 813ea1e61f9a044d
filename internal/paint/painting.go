package paint

import (
	"github.com/google/uuid"
)

// Line is the path recorded for one drag gesture, in canvas-local
// coordinates.
type Line struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

func newLine() Line {
	return Line{ID: uuid.NewString()}
}

func (l *Line) last() (Point, bool) {
	if len(l.Points) == 0 {
		return Point{}, false
	}
	return l.Points[len(l.Points)-1], true
}

// noLine marks that no line is currently open.
const noLine = -1

// Painting owns a freehand drawing and the stroke used to render it.
// It is driven once per frame by the host and is not safe for concurrent use.
type Painting struct {
	lines  []Line
	open   int
	stroke Stroke
}

func NewPainting(stroke Stroke) *Painting {
	return &Painting{
		open:   noLine,
		stroke: stroke.Normalized(),
	}
}

func (p *Painting) Stroke() Stroke { return p.stroke }

func (p *Painting) SetStroke(s Stroke) { p.stroke = s.Normalized() }

// Clear discards every line, including the one being drawn.
func (p *Painting) Clear() {
	p.lines = nil
	p.open = noLine
}

// Lines returns a copy of the drawing in z-order.
func (p *Painting) Lines() []Line {
	out := make([]Line, len(p.lines))
	for i, l := range p.lines {
		out[i] = Line{ID: l.ID, Points: append([]Point(nil), l.Points...)}
	}
	return out
}

// Stroking reports whether a line is currently receiving points.
func (p *Painting) Stroking() bool {
	return p.open != noLine && len(p.lines[p.open].Points) > 0
}

// RenderControls emits the stroke editor and the clear button.
func (p *Painting) RenderControls(ui Controls) {
	if ui.StrokeEditor("Stroke", &p.stroke) {
		p.stroke = p.stroke.Normalized()
	}
	ui.Separator()
	if ui.Button("Clear Painting") {
		p.Clear()
	}
}

// RenderCanvas captures this frame's pointer input into the open line and
// paints the drawing into the allocated region.
func (p *Painting) RenderCanvas(ui Canvas) Response {
	resp, painter := ui.AllocatePainter()
	origin := resp.Rect.Min

	if p.open == noLine {
		p.lines = append(p.lines, newLine())
		p.open = len(p.lines) - 1
	}
	current := &p.lines[p.open]

	if resp.Dragged {
		if resp.HasPointer {
			pos := resp.Pointer.Sub(origin)
			if last, ok := current.last(); !ok || last != pos {
				current.Points = append(current.Points, pos)
			}
		}
	} else if len(current.Points) > 0 {
		// seal the finished stroke
		p.lines = append(p.lines, newLine())
		p.open = len(p.lines) - 1
	}

	p.Paint(painter, origin)
	return resp
}

// Paint emits one polyline per line with at least two points, offset by
// origin, using the current stroke.
func (p *Painting) Paint(painter Painter, origin Point) {
	for _, l := range p.lines {
		if len(l.Points) < 2 {
			continue
		}
		pts := make([]Point, len(l.Points))
		for i, pt := range l.Points {
			pts[i] = origin.Add(pt)
		}
		painter.Polyline(Polyline{LineID: l.ID, Points: pts, Stroke: p.stroke})
	}
}

// Bounds returns the canvas-local bounding box of every drawn point. Lines
// with fewer than two points are not drawn and do not count.
func (p *Painting) Bounds() (Rect, bool) {
	var r Rect
	found := false
	for _, l := range p.lines {
		if len(l.Points) < 2 {
			continue
		}
		for _, pt := range l.Points {
			if !found {
				r = Rect{Min: pt, Max: pt}
				found = true
				continue
			}
			r.Min.X = min(r.Min.X, pt.X)
			r.Min.Y = min(r.Min.Y, pt.Y)
			r.Max.X = max(r.Max.X, pt.X)
			r.Max.Y = max(r.Max.Y, pt.Y)
		}
	}
	return r, found
}
