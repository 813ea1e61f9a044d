package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"PaintOverlay/internal/config"
	"PaintOverlay/internal/export"
)

// App wires the demo windows to a State and drives the painting once per
// frame.
type App struct {
	cfg      *config.Config
	fyneApp  fyne.App
	window   fyne.Window
	floating fyne.Window

	State    *State
	controls *controlRow
	canvas   *PaintCanvas
	ticker   *fyne.Animation

	quitRequested bool
	stopped       bool
}

func NewApp(a fyne.App, cfg *config.Config) *App {
	app := &App{
		cfg:     cfg,
		fyneApp: a,
		State:   NewState(cfg),
	}

	app.window = a.NewWindow(cfg.Window.Title)
	app.window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	app.window.SetMaster()
	app.window.SetMainMenu(app.mainMenu())

	app.controls = newControlRow(app.window)
	app.canvas = NewPaintCanvas(cfg.CanvasColor())

	side := newSidePanel(app.State)
	split := container.NewHSplit(side.content, centralPanel(app.controls.box, app.canvas))
	split.Offset = float64(cfg.SidePanel.Width / cfg.Window.Width)
	app.window.SetContent(split)

	app.floating = a.NewWindow("Window")
	app.floating.SetContent(floatingContent())

	// The first frame builds the controls row before anything is shown.
	app.frame()

	app.ticker = fyne.NewAnimation(time.Second, func(float32) { app.frame() })
	app.ticker.RepeatCount = fyne.AnimationRepeatForever
	app.ticker.Curve = fyne.AnimationLinear
	return app
}

func (a *App) mainMenu() *fyne.MainMenu {
	quit := fyne.NewMenuItem("Quit", a.RequestQuit)
	quit.IsQuit = true
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PDF…", func() { a.saveAs("painting.pdf", a.writePDF) }),
		fyne.NewMenuItem("Export PNG…", func() { a.saveAs("painting.png", a.writePNG) }),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	return fyne.NewMainMenu(file)
}

// RequestQuit asks the run loop to shut down at the next frame.
func (a *App) RequestQuit() {
	log.Println("[APP] Quit requested")
	a.quitRequested = true
}

// frame runs one immediate-mode pass. It reports false once the app has
// been asked to stop.
func (a *App) frame() bool {
	if a.stopped {
		return false
	}
	if a.quitRequested {
		a.stop()
		return false
	}

	a.controls.begin()
	a.State.Painting.RenderControls(a.controls)
	a.controls.end()

	a.State.Painting.RenderCanvas(a.canvas)
	a.canvas.EndFrame()
	return true
}

func (a *App) stop() {
	a.stopped = true
	if a.ticker != nil {
		a.ticker.Stop()
	}
	a.fyneApp.Quit()
}

// Run shows the windows and blocks until the app quits.
func (a *App) Run() error {
	a.floating.Show()
	a.ticker.Start()
	log.Printf("[APP] Running %q", a.cfg.Window.Title)
	a.window.ShowAndRun()
	a.stopped = true
	log.Println("[APP] Stopped")
	return nil
}

func (a *App) saveAs(name string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		if err := a.exportTo(writer, write); err != nil {
			log.Printf("[EXPORT] %s: %v", writer.URI(), err)
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(name)
	d.Show()
}

func (a *App) exportTo(writer fyne.URIWriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", writer.URI(), cerr)
		}
	}()
	return write(writer)
}

func (a *App) writePDF(w io.Writer) error {
	return export.PDF(w, a.State.Painting, export.PDFOptions{
		PageSize:   a.cfg.Export.PageSize,
		Background: a.cfg.ExportBackground(),
	})
}

func (a *App) writePNG(w io.Writer) error {
	return export.PNG(w, a.State.Painting, a.cfg.ExportBackground())
}
