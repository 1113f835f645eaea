// Package ui owns the window shell: widget layout, the output pane,
// and the wiring of each button to its handler. Handlers call into the
// session, analysis, cleaning, export, and viz packages and present
// their results; all state lives in the injected session.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"csvscope/internal"
	"csvscope/internal/config"
	"csvscope/internal/session"
	"csvscope/internal/viz"
	"csvscope/ports"
)

// App is the desktop shell around the analysis components.
type App struct {
	cfg      *config.Config
	logger   *internal.Logger
	session  *session.Session
	reader   ports.TableReader
	renderer *viz.Renderer

	fyneApp fyne.App
	window  fyne.Window
	output  *widget.TextGrid
	status  *widget.Label
}

// New creates the shell with its dependencies injected.
func New(cfg *config.Config, sess *session.Session, reader ports.TableReader, renderer *viz.Renderer) *App {
	return &App{
		cfg:      cfg,
		logger:   internal.DefaultLogger,
		session:  sess,
		reader:   reader,
		renderer: renderer,
	}
}

// Run builds the main window and blocks on the event loop until exit.
func (a *App) Run() {
	a.fyneApp = app.New()
	a.window = a.fyneApp.NewWindow(a.cfg.Window.Title)
	a.window.Resize(fyne.NewSize(float32(a.cfg.Window.Width), float32(a.cfg.Window.Height)))
	// Closing the main window exits the app even with chart windows open.
	a.window.SetMaster()

	a.output = widget.NewTextGrid()
	a.status = widget.NewLabel("Load a CSV file to begin.")

	a.window.SetContent(container.NewBorder(
		nil,
		a.status,
		a.buildSidebar(),
		nil,
		container.NewScroll(a.output),
	))

	a.logger.Info("[UI] main window ready (%dx%d)", a.cfg.Window.Width, a.cfg.Window.Height)
	a.window.ShowAndRun()
}

// buildSidebar wires the fixed action list.
func (a *App) buildSidebar() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewButton("Load CSV", a.onLoad),
		widget.NewButton("Run Analysis", a.onRunAnalysis),
		widget.NewButton("NaN Summary", a.onNaNSummary),
		widget.NewButton("Column Stats", a.onColumnStats),
		widget.NewButton("Clean Data", a.onCleanData),
		widget.NewButton("Export Results", a.onExport),
		widget.NewButton("Visualize Data", a.onVisualize),
		widget.NewSeparator(),
		widget.NewButton("Exit", a.onExit),
	)
}

// setOutput overwrites the output pane and the session's report text.
func (a *App) setOutput(text string) {
	a.session.SetReport(text)
	a.output.SetText(text)
}

func (a *App) onExit() {
	a.fyneApp.Quit()
}
