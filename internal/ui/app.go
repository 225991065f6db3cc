package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
	"github.com/piwi3910/WallPanel/internal/ui/widgets"
)

const maxRecentProjects = 10

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	config  model.AppConfig
	presets model.PresetStore
	project model.Project
	history *History
	theme   *WallPanelTheme

	// UI references for dynamic updates
	form            *parameterForm
	resultContainer *fyne.Container
}

// NewApp loads the saved settings and presets and seeds a new project from
// the configured defaults.
func NewApp(application fyne.App, window fyne.Window) *App {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		cfg = model.DefaultAppConfig()
	}
	presets, err := project.LoadPresets(project.DefaultPresetPath())
	if err != nil {
		log.Printf("Failed to load presets: %v", err)
		presets = model.NewPresetStore()
	}

	a := &App{
		app:     application,
		window:  window,
		config:  cfg,
		presets: presets,
		project: model.NewProject(),
		history: NewHistory(),
		theme:   NewWallPanelTheme(cfg.Theme),
	}
	cfg.ApplyToRequest(&a.project.Request)
	application.Settings().SetTheme(a.theme)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", a.newProject),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Walls...", a.importWalls),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", a.exportPDF),
		fyne.NewMenuItem("Export Piece Labels...", a.exportLabels),
		fyne.NewMenuItem("Export Cut List (CSV)...", a.exportCSV),
		fyne.NewMenuItem("Export Workbook (Excel)...", a.exportXLSX),
		fyne.NewMenuItem("Export Drawing (DXF)...", a.exportDXF),
		fyne.NewMenuItem("Export Efficiency Chart...", a.exportChart),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Advanced Layout Options...", a.showAdvancedSettingsDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Plan Layout", a.runPlan),
		fyne.NewMenuItem("Compare Scenarios...", a.showCompareDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Presets...", a.showPresetManager),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About WallPanel",
		"WallPanel, wall sheet layout planner\n\n"+
			"Tiles a wall with repeatable sheets around a door opening\n"+
			"and produces cut lists, labels and drawings.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.form = newParameterForm(a.project.Request)

	toolbar := container.NewHBox(
		widget.NewLabelWithStyle("Wall Parameters", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		newIconButtonWithTooltip(theme.MediaPlayIcon(), "Plan layout", a.runPlan),
		newIconButtonWithTooltip(theme.GridIcon(), "Compare scenarios", a.showCompareDialog),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF report", a.exportPDF),
	)
	left := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(a.form.Build()))

	a.resultContainer = container.NewStack(widgets.RenderLayoutResult(nil, 0, 0))

	split := container.NewHSplit(left, a.resultContainer)
	split.Offset = 0.3

	return withToolTipLayer(split, a.window.Canvas())
}

// ─── Layout ────────────────────────────────────────────────

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderLayoutResult(a.project.Result, a.config.WastePercent, a.config.PricePerSheet))
	a.resultContainer.Refresh()
}

// runPlan plans the request currently in the form. A changed request is
// recorded for undo first.
func (a *App) runPlan() {
	req, err := a.form.Request()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if req != a.project.Request {
		a.history.Push(MakeSnapshot(a.project.Request, "Plan"))
		a.project.Request = req
	}

	result, err := engine.New(req).Plan()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project.Result = &result
	a.refreshResults()
}

// applyRequest loads req into the form and plans it.
func (a *App) applyRequest(req model.LayoutRequest, label string) {
	a.history.Push(MakeSnapshot(a.project.Request, label))
	a.project.Request = req
	a.form.Set(req)
	a.runPlan()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.project.Request, "Undo"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.project.Request, "Redo"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) restore(snap Snapshot) {
	a.project.Request = snap.Request
	a.project.Result = nil
	a.form.Set(snap.Request)
	a.refreshResults()
}

// ─── Projects ──────────────────────────────────────────────

func (a *App) newProject() {
	a.project = model.NewProject()
	a.config.ApplyToRequest(&a.project.Request)
	a.history.Clear()
	a.form.Set(a.project.Request)
	a.refreshResults()
}

func (a *App) saveProject() {
	req, err := a.form.Request()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project.Request = req

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		saved, err := project.SaveProject(path, a.project)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberProject(saved)
	}, a.window)
	d.SetFileName(a.project.Name + project.FileExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		proj, err := project.LoadProject(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = proj
		a.history.Clear()
		a.form.Set(proj.Request)
		a.refreshResults()
		a.rememberProject(path)
	}, a.window)
	d.Show()
}

func (a *App) rememberProject(path string) {
	a.config.AddRecentProject(path, maxRecentProjects)
	if err := a.saveConfig(); err != nil {
		log.Printf("Failed to save recent projects: %v", err)
	}
}

// currentResult returns the planned layout, telling the user when there is
// none yet.
func (a *App) currentResult() (model.LayoutResult, bool) {
	if a.project.Result == nil || len(a.project.Result.Pieces) == 0 {
		dialog.ShowInformation("No layout", "Plan a layout before exporting.", a.window)
		return model.LayoutResult{}, false
	}
	return *a.project.Result, true
}

func (a *App) showResultMessage(title, format string, args ...interface{}) {
	dialog.ShowInformation(title, fmt.Sprintf(format, args...), a.window)
}
