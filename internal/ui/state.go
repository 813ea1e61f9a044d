package ui

import (
	"fyne.io/fyne/v2/data/binding"

	"PaintOverlay/internal/assets"
	"PaintOverlay/internal/config"
	"PaintOverlay/internal/paint"
)

// State is everything the demo UI edits. It is owned by the main goroutine.
type State struct {
	Painting *paint.Painting
	Texture  *assets.Texture

	ValueMin float64
	ValueMax float64

	label binding.String
	value binding.Float
}

func NewState(cfg *config.Config) *State {
	s := &State{
		Painting: paint.NewPainting(cfg.Stroke()),
		Texture:  assets.NewTexture(),
		ValueMin: cfg.SidePanel.ValueMin,
		ValueMax: cfg.SidePanel.ValueMax,
		label:    binding.NewString(),
		value:    binding.NewFloat(),
	}
	_ = s.value.Set(s.ValueMin)
	return s
}

func (s *State) Label() string {
	v, _ := s.label.Get()
	return v
}

func (s *State) Value() float64 {
	v, _ := s.value.Get()
	return v
}

// Increment adds one to the value, stopping at the slider's maximum.
func (s *State) Increment() {
	_ = s.value.Set(min(s.Value()+1, s.ValueMax))
}
