package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PaintOverlay/internal/assets"
)

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func link(text, raw string) fyne.CanvasObject {
	u, err := url.Parse(raw)
	if err != nil {
		return widget.NewLabel(text)
	}
	return widget.NewHyperlink(text, u)
}

// sidePanel holds the demo widgets on the left of the main window.
type sidePanel struct {
	content fyne.CanvasObject
	image   *canvas.Image
	texture *assets.Texture
}

func newSidePanel(s *State) *sidePanel {
	p := &sidePanel{texture: s.Texture}

	entry := widget.NewEntryWithData(s.label)
	entry.SetPlaceHolder("...")
	write := container.NewBorder(nil, nil, widget.NewLabel("Write something: "), nil, entry)

	slider := widget.NewSliderWithData(s.ValueMin, s.ValueMax, s.value)
	slider.Step = 0.01
	valueText := widget.NewLabelWithData(binding.FloatToStringWithFormat(s.value, "%.2f"))
	value := container.NewBorder(nil, nil, nil, container.NewHBox(valueText, widget.NewLabel("value")), slider)

	increment := widget.NewButton("Increment", s.Increment)

	p.image = canvas.NewImageFromImage(nil)
	p.image.FillMode = canvas.ImageFillContain
	p.image.SetMinSize(fyne.NewSize(assets.IconSize, assets.IconSize))
	p.refreshTexture()

	textureButtons := container.NewHBox(
		widget.NewButton("Load", func() { p.texture.Load(); p.refreshTexture() }),
		widget.NewButton("Invert", func() { p.texture.Invert(); p.refreshTexture() }),
		widget.NewButton("Remove", func() { p.texture.Remove(); p.refreshTexture() }),
	)

	top := container.NewVBox(
		heading("Side Panel"),
		write,
		value,
		increment,
		textureButtons,
		p.image,
	)
	footer := container.NewCenter(link("powered by fyne", "https://fyne.io/"))
	p.content = container.NewBorder(top, footer, nil, nil)
	return p
}

func (p *sidePanel) refreshTexture() {
	img := p.texture.Image()
	p.image.Image = img
	if img == nil {
		p.image.Hide()
	} else {
		p.image.Show()
	}
	p.image.Refresh()
}

// centralPanel fills the space right of the side panel. The painting
// controls row and canvas are supplied by the caller.
func centralPanel(controls, paintCanvas fyne.CanvasObject) fyne.CanvasObject {
	top := container.NewVBox(
		heading("Fyne Template"),
		link("github.com/fyne-io/fyne", "https://github.com/fyne-io/fyne"),
		link("Developer documentation", "https://docs.fyne.io/"),
		widget.NewSeparator(),
		heading("Central Panel"),
		widget.NewLabel("The central panel is the region left after adding the menu bar and side panel."),
		widget.NewLabel("It is often a great place for big things, like drawings:"),
		heading("Draw with your mouse to paint:"),
		controls,
	)
	return container.NewBorder(top, nil, nil, nil, container.NewPadded(paintCanvas))
}

func floatingContent() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel("Windows can be moved by dragging them."),
		widget.NewLabel("They are automatically sized based on contents."),
		widget.NewLabel("You can turn on resizing and scrolling if you like."),
		widget.NewLabel("You would normally choose either panels OR windows."),
		layout.NewSpacer(),
	)
}
