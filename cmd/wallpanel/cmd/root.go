package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	presetsPath string

	// cfg is loaded before every command runs.
	cfg model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "wallpanel",
	Short: "Wall sheet layout planner",
	Long: `Tile a wall with repeatable sheets, cut them around a door opening and
export the resulting cut list, labels and drawings.

Examples:
  wallpanel plan --wall-width 6000 --wall-height 3000          # Plan with defaults
  wallpanel export --format pdf,csv --output-dir out           # Export a layout
  wallpanel batch walls.xlsx --format csv                      # Plan every imported wall
  wallpanel serve --addr :8080                                 # Run the HTTP API
  wallpanel ui                                                 # Launch the desktop app`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Fyne fails to parse the locale when LANG=C
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", project.DefaultConfigPath(), "settings file")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", project.DefaultPresetPath(), "preset store file")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if !verbose {
		log.SetOutput(io.Discard)
	}
	loaded, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings from %s: %w", configPath, err)
	}
	cfg = loaded
	log.Printf("Loaded settings from %s", configPath)
	return nil
}
