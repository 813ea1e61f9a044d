package assets

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"PaintOverlay/internal/paint"
	"PaintOverlay/internal/render"
)

const IconSize = 256

var (
	iconBackground = color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	iconDisc       = color.NRGBA{R: 41, G: 120, B: 217, A: 255}
)

// Icon draws the demo texture.
func Icon() image.Image {
	size := fyne.NewSize(IconSize, IconSize)

	disc := canvas.NewCircle(iconDisc)
	disc.Move(fyne.NewPos(IconSize*0.05, IconSize*0.05))
	disc.Resize(fyne.NewSize(IconSize*0.9, IconSize*0.9))

	zigzag := paint.Polyline{
		Points: []paint.Point{paint.Pt(70, 170), paint.Pt(110, 90), paint.Pt(150, 150), paint.Pt(190, 80)},
		Stroke: paint.Stroke{Width: 14, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	objects := []fyne.CanvasObject{render.Background(iconBackground, size), disc}
	objects = append(objects, render.Segments([]paint.Polyline{zigzag}, paint.Point{})...)
	return cloneNRGBA(render.Rasterize(size, objects...))
}

// Inverted returns a copy of img with its color channels inverted and alpha
// kept.
func Inverted(img image.Image) image.Image {
	out := cloneNRGBA(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i] = 255 - out.Pix[i]
		out.Pix[i+1] = 255 - out.Pix[i+1]
		out.Pix[i+2] = 255 - out.Pix[i+2]
	}
	return out
}

func cloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Texture is the image shown in the side panel, swappable at runtime.
type Texture struct {
	normal   image.Image
	inverted image.Image
	Inverted bool
	loaded   bool
}

// NewTexture returns a texture that starts out loaded.
func NewTexture() *Texture {
	return &Texture{loaded: true}
}

// Load makes the texture visible, honouring the inverted flag.
func (t *Texture) Load() {
	t.loaded = true
}

// Invert flips the inverted flag and loads the matching image.
func (t *Texture) Invert() {
	t.Inverted = !t.Inverted
	t.loaded = true
}

func (t *Texture) Loaded() bool { return t.loaded }

func (t *Texture) Remove() {
	t.loaded = false
}

// Image returns the currently loaded image, or nil when removed.
func (t *Texture) Image() image.Image {
	if !t.loaded {
		return nil
	}
	if t.normal == nil {
		t.normal = Icon()
	}
	if !t.Inverted {
		return t.normal
	}
	if t.inverted == nil {
		t.inverted = Inverted(t.normal)
	}
	return t.inverted
}
