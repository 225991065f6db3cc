package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/piwi3910/WallPanel/internal/model"
)

// EfficiencyChart builds a bar chart of efficiency and waste per layout mode.
func EfficiencyChart(result model.LayoutResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Layout efficiency by mode",
			Subtitle: fmt.Sprintf("Wall %.0f x %.0f mm, mode used: %s", result.Request.Wall.Width, result.Request.Wall.Height, result.ModeUsed),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
	)

	modes := make([]string, 0, len(result.Efficiency))
	eff := make([]opts.BarData, 0, len(result.Efficiency))
	waste := make([]opts.BarData, 0, len(result.Efficiency))
	for _, row := range result.Efficiency {
		modes = append(modes, row.Mode.String())
		eff = append(eff, opts.BarData{Name: row.Mode.String(), Value: row.EfficiencyPct})
		waste = append(waste, opts.BarData{Name: row.Mode.String(), Value: row.WastePct})
	}

	bar.SetXAxis(modes).
		AddSeries("Efficiency (%)", eff).
		AddSeries("Waste (%)", waste)
	return bar
}

// RenderChart writes the efficiency chart as a standalone HTML page.
func RenderChart(w io.Writer, result model.LayoutResult) error {
	if len(result.Efficiency) == 0 {
		return fmt.Errorf("no efficiency data to chart")
	}
	return EfficiencyChart(result).Render(w)
}

// ExportChart writes the efficiency chart HTML to a file.
func ExportChart(path string, result model.LayoutResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := RenderChart(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
