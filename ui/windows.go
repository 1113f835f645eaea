package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"csvscope/internal/analysis"
	"csvscope/internal/cleaning"
	apperrors "csvscope/internal/errors"
	"csvscope/internal/viz"
)

// The picker windows are not modal: the main window stays interactive
// while they are open, so a new load can swap the session dataset
// underneath them. Every action below therefore re-fetches the table
// at click time instead of acting on the one captured when the window
// opened. Chart windows keep their creation-time image.

// onColumnStats opens the column picker window; chosen stats render
// into that window's own text pane.
func (a *App) onColumnStats() {
	t, err := a.session.Table()
	if err != nil {
		a.presentError(err)
		return
	}

	win := a.fyneApp.NewWindow("Column Stats")
	win.Resize(fyne.NewSize(400, 550))

	result := widget.NewTextGrid()
	picker := widget.NewSelect(t.ColumnNames(), nil)
	picker.PlaceHolder = "Select Column"

	show := widget.NewButton("Show Stats", func() {
		if picker.Selected == "" {
			dialog.ShowInformation("Select Column", "Please select a column.", win)
			return
		}
		text, err := a.columnStatsReport(picker.Selected)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		result.SetText(text)
	})

	win.SetContent(container.NewBorder(
		container.NewVBox(picker, show),
		nil, nil, nil,
		container.NewScroll(result),
	))
	win.Show()
}

// columnStatsReport computes per-column statistics against the
// session's current dataset.
func (a *App) columnStatsReport(name string) (string, error) {
	t, err := a.session.Table()
	if err != nil {
		return "", err
	}
	cs, err := analysis.ComputeColumnStats(t, name)
	if err != nil {
		return "", err
	}
	return cs.Report(), nil
}

// onCleanData opens the strategy picker. Exactly one strategy runs per
// Execute, in place, with a confirmation dialog afterwards.
func (a *App) onCleanData() {
	if _, err := a.session.Table(); err != nil {
		a.presentError(err)
		return
	}

	win := a.fyneApp.NewWindow("Data Cleaning")
	win.Resize(fyne.NewSize(400, 200))

	choice := widget.NewRadioGroup(cleaning.Labels(), nil)

	execute := widget.NewButton("Execute", func() {
		strategy, ok := cleaning.FromLabel(choice.Selected)
		if !ok {
			dialog.ShowInformation("Warning", "Please select a cleaning option.", win)
			return
		}
		if err := a.applyCleaning(strategy); err != nil {
			dialog.ShowError(err, a.window)
			win.Close()
			return
		}
		dialog.ShowInformation("Success", strategy.Confirmation(), a.window)
		win.Close()
	})
	cancel := widget.NewButton("Cancel", win.Close)

	win.SetContent(container.NewVBox(
		choice,
		container.NewHBox(execute, cancel),
	))
	win.Show()
}

// applyCleaning runs the strategy against the session's current
// dataset and updates the status line.
func (a *App) applyCleaning(strategy cleaning.Strategy) error {
	t, err := a.session.Table()
	if err != nil {
		return err
	}
	if err := cleaning.Apply(t, strategy); err != nil {
		return err
	}
	a.logger.Info("[UI] applied cleaning strategy %q (%d rows, %d columns remain)",
		strategy, t.RowCount(), t.ColumnCount())
	a.status.SetText(fmt.Sprintf("%s Rows: %d, Columns: %d", strategy.Confirmation(), t.RowCount(), t.ColumnCount()))
	return nil
}

// onVisualize opens the chart picker; each Generate renders one chart
// into a new independent window.
func (a *App) onVisualize() {
	t, err := a.session.Table()
	if err != nil {
		a.presentError(err)
		return
	}

	win := a.fyneApp.NewWindow("Data Visualizer")
	win.Resize(fyne.NewSize(600, 400))

	columnPicker := widget.NewSelect(t.ColumnNames(), nil)
	columnPicker.PlaceHolder = "Select Column"
	chartPicker := widget.NewSelect(viz.Kinds(), nil)
	chartPicker.PlaceHolder = "Select Chart Type"

	generate := widget.NewButton("Generate Chart", func() {
		if columnPicker.Selected == "" {
			dialog.ShowInformation("Select Column", "Please select a column.", win)
			return
		}
		if chartPicker.Selected == "" {
			dialog.ShowInformation("Select Chart Type", "Please select a chart type.", win)
			return
		}
		img, err := a.chartFor(columnPicker.Selected, viz.ChartKind(chartPicker.Selected))
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		a.showChartWindow(fmt.Sprintf("%s of %s", chartPicker.Selected, columnPicker.Selected), img)
	})

	win.SetContent(container.NewVBox(
		widget.NewLabel("Select Column:"),
		columnPicker,
		widget.NewLabel("Select Chart Type:"),
		chartPicker,
		generate,
	))
	win.Show()
}

// chartFor renders the chart over the named column of the session's
// current dataset.
func (a *App) chartFor(columnName string, kind viz.ChartKind) (image.Image, error) {
	t, err := a.session.Table()
	if err != nil {
		return nil, err
	}
	col, ok := t.Column(columnName)
	if !ok {
		return nil, apperrors.UnknownColumn(columnName)
	}
	return a.renderer.Render(col, kind)
}

// showChartWindow displays a rendered chart in its own window. Closing
// it leaves the main window and the dataset untouched.
func (a *App) showChartWindow(title string, img image.Image) {
	chartWin := a.fyneApp.NewWindow(title)
	chartImg := canvas.NewImageFromImage(img)
	chartImg.FillMode = canvas.ImageFillContain
	chartWin.SetContent(chartImg)
	chartWin.Resize(fyne.NewSize(float32(a.cfg.Chart.Width), float32(a.cfg.Chart.Height)))
	chartWin.Show()
}
