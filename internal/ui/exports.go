package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/WallPanel/internal/export"
	"github.com/piwi3910/WallPanel/internal/model"
)

// exportResult asks for a destination and writes the current layout there.
func (a *App) exportResult(what, fileName string, write func(path string, result model.LayoutResult) error) {
	result, ok := a.currentResult()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path, result); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.showResultMessage("Export Complete", "%s saved to %s", what, path)
	}, a.window)
	d.SetFileName(fileName)
	d.Show()
}

func (a *App) exportPDF() {
	opts := export.ReportOptionsFromConfig(a.config)
	a.exportResult("Report", "wall_layout.pdf", func(path string, result model.LayoutResult) error {
		return export.ExportPDF(path, result, opts)
	})
}

func (a *App) exportLabels() {
	a.exportResult("Labels", "piece_labels.pdf", export.ExportLabels)
}

func (a *App) exportCSV() {
	a.exportResult("Cut list", "cut_list.csv", export.ExportCSV)
}

func (a *App) exportXLSX() {
	a.exportResult("Workbook", "wall_layout.xlsx", export.ExportXLSX)
}

func (a *App) exportDXF() {
	a.exportResult("Drawing", "wall_layout.dxf", export.ExportDXF)
}

func (a *App) exportChart() {
	a.exportResult("Chart", "efficiency.html", export.ExportChart)
}
