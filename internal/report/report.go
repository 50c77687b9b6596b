// Package report renders an HTML summary of a batch conversion run.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/radiosky-data/spectro.report/internal/batch"
)

// WriteHTML renders a bar chart of decoded sweep counts per file, with
// skipped files shown at zero, plus the run tally in the subtitle. The
// output is a standalone HTML page.
func WriteHTML(w io.Writer, runID string, results []batch.FileResult, tally batch.Tally) error {
	names := make([]string, 0, len(results))
	sweeps := make([]opts.BarData, 0, len(results))
	for _, res := range results {
		names = append(names, filepath.Base(res.Path))
		if res.Err != nil {
			sweeps = append(sweeps, opts.BarData{
				Value:   0,
				Tooltip: &opts.Tooltip{Show: opts.Bool(true)},
				Name:    fmt.Sprintf("skipped: %v", res.Err),
			})
		} else {
			sweeps = append(sweeps, opts.BarData{Value: res.Sweeps})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "SPS batch report"}),
		charts.WithTitleOpts(opts.Title{
			Title: "SPS conversion batch",
			Subtitle: fmt.Sprintf("run %s: %d attempted, %d converted, %d skipped",
				runID, tally.Attempted, tally.Succeeded, tally.Skipped),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "sweeps"}),
	)
	bar.SetXAxis(names).AddSeries("sweeps decoded", sweeps)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render batch report: %w", err)
	}
	return nil
}
