package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import settings and presets",
	Long: `Write the settings and the preset store to one JSON file, or restore
them from such a file.

Examples:
  wallpanel backup export wallpanel-backup.json
  wallpanel backup import wallpanel-backup.json`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write settings and presets to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := project.LoadPresets(presetsPath)
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], cfg, presets); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported settings and %d presets to %s\n", len(presets.Presets), args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore settings and presets from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		if err := project.SavePresets(presetsPath, backup.Presets); err != nil {
			return fmt.Errorf("failed to save presets: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored settings and %d presets from backup created at %s\n",
			len(backup.Presets.Presets), backup.CreatedAt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
}
