package cmd

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the desktop application",
	Long: `Launch the WallPanel desktop application with a parameter form, a wall
preview, the efficiency table and every export.

Examples:
  # Launch the UI
  wallpanel ui

  # Launch with verbose logging
  wallpanel ui -v`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	log.Println("Launching WallPanel UI")

	application := app.NewWithID("com.piwi3910.wallpanel")
	window := application.NewWindow("WallPanel, Wall Sheet Layout Planner")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
	return nil
}
