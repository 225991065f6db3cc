package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/project"
)

var (
	presetFlags       requestFlags
	presetDescription string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved layout presets",
	Long: `Save, list and delete named layout presets. A preset stores every
layout parameter and can seed plan, export and batch with --preset.

Examples:
  wallpanel preset save "Standard door wall" --door-width 900 --merge-headers
  wallpanel preset list
  wallpanel plan --preset "Standard door wall" --wall-width 4200
  wallpanel preset delete "Standard door wall"`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the layout parameters under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := presetFlags.request(cmd)
		if err != nil {
			return err
		}
		p, err := project.SavePreset(presetsPath, args[0], presetDescription, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q (%s)\n", p.Name, p.ID)
		return nil
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadPresets(presetsPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(store.Presets) == 0 {
			fmt.Fprintln(out, "No presets saved.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tWALL\tDOOR\tSHEET\tMODE\tDESCRIPTION")
		for _, p := range store.Presets {
			req := p.Request
			door := "-"
			if !req.Door.Absent() {
				door = fmt.Sprintf("%.0fx%.0f@%.0f", req.Door.Width, req.Door.Height, req.Door.X)
			}
			fmt.Fprintf(tw, "%s\t%.0fx%.0f\t%s\t%.0fx%.0f\t%s\t%s\n",
				p.Name, req.Wall.Width, req.Wall.Height, door,
				req.Sheet.Width, req.Sheet.Height, req.Mode, p.Description)
		}
		return tw.Flush()
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := project.DeletePreset(presetsPath, args[0]); err != nil {
			if errors.Is(err, project.ErrPresetNotFound) {
				return fmt.Errorf("preset %q not found", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd, presetListCmd, presetDeleteCmd)

	addRequestFlags(presetSaveCmd, &presetFlags)
	presetSaveCmd.Flags().StringVarP(&presetDescription, "description", "d", "", "preset description")
}
