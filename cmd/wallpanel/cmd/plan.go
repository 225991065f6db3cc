package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/model"
)

var (
	planFlags   requestFlags
	planJSON    bool
	planCompare bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a wall layout and print the cut list",
	Long: `Tile the wall with sheets, cut them around the door and print the
resulting pieces, the efficiency of every layout mode and any warnings.

Unset flags fall back to the settings file, or to the preset given with
--preset.

Examples:
  wallpanel plan
  wallpanel plan --wall-width 4800 --door-x 300 --mode vertical
  wallpanel plan --merge-headers --side-panels --json
  wallpanel plan --compare`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	addRequestFlags(planCmd, &planFlags)
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the full result as JSON")
	planCmd.Flags().BoolVar(&planCompare, "compare", false, "compare the request against alternative modes and options")
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, err := planFlags.request(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if planCompare {
		if err := req.Validate(); err != nil {
			return err
		}
		printComparison(out, engine.CompareScenarios(engine.BuildDefaultScenarios(req)))
		return nil
	}

	result, err := engine.New(req).Plan()
	if err != nil {
		return err
	}

	if planJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(out, result)
	return nil
}

// printResult writes a human readable report of a layout.
func printResult(w io.Writer, result model.LayoutResult) {
	req := result.Request
	fmt.Fprintf(w, "Wall %.0f x %.0f mm, sheet %.0f x %.0f mm, gap %.0f mm\n",
		req.Wall.Width, req.Wall.Height, req.Sheet.Width, req.Sheet.Height, req.Gap)
	if req.Door.Absent() {
		fmt.Fprintln(w, "No door")
	} else {
		fmt.Fprintf(w, "Door %.0f x %.0f mm at x=%.0f mm\n", req.Door.Width, req.Door.Height, req.Door.X)
	}
	fmt.Fprintf(w, "Mode used: %s\n\n", result.ModeUsed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tX\tY\tWIDTH\tHEIGHT")
	for _, p := range result.Pieces {
		fmt.Fprintf(tw, "%d\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n", p.Index, p.Kind, p.X, p.Y, p.Width, p.Height)
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tEFFICIENCY\tWASTE\tUSED")
	for _, row := range result.Efficiency {
		marker := ""
		if row.Mode == result.ModeUsed {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%.2f%%\t%.2f%%\t%.2f m²\n", row.Mode, marker, row.EfficiencyPct, row.WastePct, row.UsedAreaM2)
	}
	tw.Flush()

	est := model.CalculatePurchaseEstimate(result.Pieces, req.Sheet, cfg.WastePercent, cfg.PricePerSheet)
	fmt.Fprintf(w, "\n%d pieces, %.2f%% of the wall covered, buy %d sheets (%d with %.0f%% waste)\n",
		len(result.Pieces), result.FinalEfficiency(), est.SheetsNeededMin, est.SheetsWithWaste, est.WastePercent)
	if est.PricePerSheet > 0 {
		fmt.Fprintf(w, "Estimated material cost: %.2f\n", est.EstimatedCost)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warning)
	}
}

// printComparison writes one line per scenario, best efficiency marked.
func printComparison(w io.Writer, results []engine.ComparisonResult) {
	best := -1
	for i, r := range results {
		if r.Err == nil && (best < 0 || r.Efficiency > results[best].Efficiency) {
			best = i
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tMODE\tPIECES\tEFFICIENCY\tWASTE")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%v\n", r.Scenario.Name, r.Err)
			continue
		}
		name := r.Scenario.Name
		if i == best {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f%%\t%.2f%%\n", name, r.Result.ModeUsed, r.PieceCount, r.Efficiency, r.WastePercent)
	}
	tw.Flush()
}
