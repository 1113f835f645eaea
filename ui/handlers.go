package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"csvscope/internal/analysis"
	apperrors "csvscope/internal/errors"
	"csvscope/internal/export"
)

// presentError maps handler failures to dialogs. A missing dataset is
// a recoverable warning; everything else is an error dialog. No
// handler failure propagates past here.
func (a *App) presentError(err error) {
	if apperrors.GetCode(err) == apperrors.CodeNoDataset {
		dialog.ShowInformation("Warning", "Please load a CSV file first.", a.window)
		return
	}
	a.logger.Error("[UI] handler failed: %v", err)
	dialog.ShowError(err, a.window)
}

// onLoad opens the file chooser and replaces the session dataset on a
// successful parse. A failed parse leaves the previous dataset intact.
func (a *App) onLoad() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if rc == nil {
			return // chooser cancelled
		}
		path := rc.URI().Path()
		rc.Close()

		t, err := a.reader.ReadTable(path)
		if err != nil {
			a.logger.Warn("[UI] load failed for %s: %v", path, err)
			dialog.ShowError(err, a.window)
			return
		}

		a.session.Replace(t)
		a.status.SetText(fmt.Sprintf("Loaded %s: %d rows, %d columns", t.Source, t.RowCount(), t.ColumnCount()))
		dialog.ShowInformation("File Loaded",
			fmt.Sprintf("File loaded: %s\nRows: %d, Columns: %d", path, t.RowCount(), t.ColumnCount()),
			a.window)
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	fd.Show()
}

// onRunAnalysis writes the full summary into the output pane.
func (a *App) onRunAnalysis() {
	t, err := a.session.Table()
	if err != nil {
		a.presentError(err)
		return
	}
	a.setOutput(analysis.Describe(t))
	a.status.SetText("Analysis complete.")
}

// onNaNSummary writes the missing-value summary into the output pane.
func (a *App) onNaNSummary() {
	t, err := a.session.Table()
	if err != nil {
		a.presentError(err)
		return
	}
	a.setOutput(analysis.MissingSummary(t))
	a.status.SetText("NaN summary complete.")
}

// onExport writes the current report text verbatim to a chosen path.
// The loaded dataset is only a guard; the export source is the pane.
func (a *App) onExport() {
	if !a.session.HasTable() {
		a.presentError(apperrors.NoDataset())
		return
	}

	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		if err := export.Write(wc, a.session.Report()); err != nil {
			a.presentError(err)
			return
		}
		dialog.ShowInformation("Success", "Exported to:\n"+wc.URI().Path(), a.window)
	}, a.window)
	fs.SetFileName("analysis.txt")
	fs.Show()
}
