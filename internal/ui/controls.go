package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PaintOverlay/internal/paint"
)

const maxStrokeWidth = 20.0

// colorSwatch is a tappable square showing a color.
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

type controlKind int

const (
	kindStrokeEditor controlKind = iota
	kindSeparator
	kindButton
)

type control struct {
	kind  controlKind
	label string
	obj   fyne.CanvasObject

	clicked bool
	stroke  *strokeEditor
}

// controlRow adapts immediate-mode widget emission onto a retained fyne
// container. Widgets are identified by emission order within a frame and
// created the first time they are emitted.
type controlRow struct {
	box    *fyne.Container
	parent fyne.Window
	items  []*control
	next   int
}

var _ paint.Controls = (*controlRow)(nil)

func newControlRow(parent fyne.Window) *controlRow {
	return &controlRow{box: container.NewHBox(), parent: parent}
}

func (r *controlRow) begin() { r.next = 0 }

// end drops widgets that were not emitted this frame.
func (r *controlRow) end() {
	if r.next == len(r.items) {
		return
	}
	r.items = r.items[:r.next]
	r.relayout()
}

func (r *controlRow) relayout() {
	objects := make([]fyne.CanvasObject, 0, len(r.items))
	for _, it := range r.items {
		objects = append(objects, it.obj)
	}
	r.box.Objects = objects
	r.box.Refresh()
}

func (r *controlRow) emit(kind controlKind, label string, create func(*control)) *control {
	if r.next < len(r.items) {
		it := r.items[r.next]
		if it.kind == kind && it.label == label {
			r.next++
			return it
		}
		r.items = r.items[:r.next]
	}
	it := &control{kind: kind, label: label}
	create(it)
	r.items = append(r.items, it)
	r.next++
	r.relayout()
	return it
}

func (r *controlRow) Separator() {
	r.emit(kindSeparator, "", func(it *control) {
		it.obj = widget.NewSeparator()
	})
}

func (r *controlRow) Button(label string) bool {
	it := r.emit(kindButton, label, func(it *control) {
		it.obj = widget.NewButton(label, func() { it.clicked = true })
	})
	clicked := it.clicked
	it.clicked = false
	return clicked
}

func (r *controlRow) StrokeEditor(label string, s *paint.Stroke) bool {
	it := r.emit(kindStrokeEditor, label, func(it *control) {
		it.stroke = newStrokeEditor(label, *s, r.parent)
		it.obj = it.stroke.content
	})
	return it.stroke.sync(s)
}

// strokeEditor edits a width with a slider and a color with a picker.
type strokeEditor struct {
	content *fyne.Container
	slider  *widget.Slider
	width   *widget.Label
	swatch  *colorSwatch

	value   paint.Stroke
	edited  bool
	syncing bool
}

func newStrokeEditor(label string, initial paint.Stroke, parent fyne.Window) *strokeEditor {
	e := &strokeEditor{value: initial}

	e.slider = widget.NewSlider(paint.MinStrokeWidth, maxStrokeWidth)
	e.slider.Step = 0.1
	e.slider.SetValue(float64(initial.Width))
	e.slider.OnChanged = func(v float64) {
		if e.syncing {
			return
		}
		e.value.Width = float32(v)
		e.width.SetText(formatWidth(e.value.Width))
		e.edited = true
	}

	e.width = widget.NewLabel(formatWidth(initial.Width))
	e.swatch = newColorSwatch(initial.Color, func() {
		picker := dialog.NewColorPicker("Stroke color", "", func(c color.Color) {
			e.value.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
			e.swatch.SetColor(e.value.Color)
			e.edited = true
		}, parent)
		picker.Advanced = true
		picker.SetColor(e.value.Color)
		picker.Show()
	})

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), e.slider)
	e.content = container.NewHBox(widget.NewLabel(label+":"), sliderBox, e.width, e.swatch)
	return e
}

func formatWidth(w float32) string {
	return fmt.Sprintf("%.1f", w)
}

// sync writes pending user edits into s, or refreshes the widgets when s
// was changed elsewhere.
func (e *strokeEditor) sync(s *paint.Stroke) bool {
	if e.edited {
		e.edited = false
		*s = e.value
		return true
	}
	if e.value == *s {
		return false
	}
	e.value = *s
	e.syncing = true
	e.slider.SetValue(float64(s.Width))
	e.syncing = false
	e.width.SetText(formatWidth(s.Width))
	e.swatch.SetColor(s.Color)
	return false
}
