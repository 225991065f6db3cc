package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	modeSelect := widget.NewSelect(modeOptions, func(selected string) {
		if mode, err := model.ParseLayoutMode(selected); err == nil {
			cfg.DefaultMode = mode
		}
	})
	modeSelect.SetSelected(cfg.DefaultMode.String())

	mergeCheck := widget.NewCheck("", func(b bool) { cfg.MergeHeaders = b })
	mergeCheck.Checked = cfg.MergeHeaders
	sideCheck := widget.NewCheck("", func(b bool) { cfg.SidePanels = b })
	sideCheck.Checked = cfg.SidePanels

	serverEntry := widget.NewEntry()
	serverEntry.SetText(cfg.ServerAddr)
	serverEntry.OnChanged = func(text string) { cfg.ServerAddr = text }

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("API Listen Address", serverEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Wall Width (mm)", floatEntry(&cfg.DefaultWallWidth)),
		widget.NewFormItem("Default Wall Height (mm)", floatEntry(&cfg.DefaultWallHeight)),
		widget.NewFormItem("Default Sheet Width (mm)", floatEntry(&cfg.DefaultSheetWidth)),
		widget.NewFormItem("Default Sheet Height (mm)", floatEntry(&cfg.DefaultSheetHeight)),
		widget.NewFormItem("Default Gap (mm)", floatEntry(&cfg.DefaultGap)),
		widget.NewFormItem("Default Grid Step (mm)", floatEntry(&cfg.DefaultGridStep)),
		widget.NewFormItem("Default Mode", modeSelect),
		widget.NewFormItem("Header Threshold (mm)", floatEntry(&cfg.DefaultHeaderThreshold)),
		widget.NewFormItem("Merge Headers", mergeCheck),
		widget.NewFormItem("Side Panels", sideCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Purchase Waste (%)", floatEntry(&cfg.WastePercent)),
		widget.NewFormItem("Price per Sheet", floatEntry(&cfg.PricePerSheet)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.theme.SetName(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
			if a.project.Result != nil {
				a.refreshResults()
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 600))
	d.Show()
}

// showImportExportDialog displays the backup import/export dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.presets); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("wallpanel-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and presets.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.presets = backup.Presets
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if err := project.SavePresets(project.DefaultPresetPath(), a.presets); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported presets: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and presets to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
