package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"PaintOverlay/internal/config"
	"PaintOverlay/internal/ui"
)

const appID = "io.github.paintoverlay"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// must be set before the driver starts
	if err := applyScale(cfg.Window.Scale); err != nil {
		log.Printf("[APP] Ignoring window scale: %v", err)
	}

	a := ui.NewApp(app.NewWithID(appID), cfg)
	if err := a.Run(); err != nil {
		log.Fatalf("App exited with error: %v", err)
	}
}

// applyScale hands a configured scale to fyne through FYNE_SCALE. Zero
// keeps fyne's own choice.
func applyScale(scale float32) error {
	if scale <= 0 {
		return nil
	}
	if err := os.Setenv("FYNE_SCALE", fmt.Sprintf("%g", scale)); err != nil {
		return fmt.Errorf("setting FYNE_SCALE: %w", err)
	}
	return nil
}
