package paint

// Controls is the part of the host's layout cursor used by RenderControls.
// Each call emits one widget at the cursor's current position.
type Controls interface {
	// StrokeEditor shows width and color editors bound to s. Edits made by
	// the user are written into s before it returns true.
	StrokeEditor(label string, s *Stroke) bool
	Separator()
	// Button reports whether the button was clicked since the last frame.
	Button(label string) bool
}

// Canvas is the part of the host's layout cursor used by RenderCanvas.
type Canvas interface {
	// AllocatePainter claims the remaining region of the cursor for
	// drawing, sensing drag gestures on it.
	AllocatePainter() (Response, Painter)
}

// Response describes the allocated region and this frame's pointer state.
type Response struct {
	Rect Rect
	// Dragged is true while a drag gesture that started on Rect is active.
	Dragged bool
	// Pointer is only meaningful when HasPointer is set.
	Pointer    Point
	HasPointer bool
}

// Polyline is a single draw command in absolute coordinates.
type Polyline struct {
	LineID string
	Points []Point
	Stroke Stroke
}

// Painter receives draw commands in back-to-front order.
type Painter interface {
	Polyline(Polyline)
}

// Recorder is a Painter that keeps every command it receives.
type Recorder struct {
	Commands []Polyline
}

func (r *Recorder) Polyline(p Polyline) {
	r.Commands = append(r.Commands, p)
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Equal reports whether both recorders hold the same commands.
func (r *Recorder) Equal(o *Recorder) bool {
	if len(r.Commands) != len(o.Commands) {
		return false
	}
	for i, c := range r.Commands {
		d := o.Commands[i]
		if c.LineID != d.LineID || c.Stroke != d.Stroke || len(c.Points) != len(d.Points) {
			return false
		}
		for j := range c.Points {
			if c.Points[j] != d.Points[j] {
				return false
			}
		}
	}
	return true
}
