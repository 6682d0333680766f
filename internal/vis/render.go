package vis

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/benchstash/benchstash/internal/gitops"
)

// Render writes an HTML page of charts for the dataset. Style "basic"
// plots each metric's min-collapsed value as a line over commits; "dist"
// plots the raw samples of each metric as per-commit box plots, the
// repeated-trial spread the trend view hides.
func Render(d *Dataset, style string, w io.Writer) error {
	page := components.NewPage()
	switch style {
	case "basic":
		for _, metricID := range d.Metrics {
			page.AddCharts(trendChart(d, metricID))
		}
	case "dist":
		for _, metricID := range d.Metrics {
			page.AddCharts(distChart(d, metricID))
		}
	default:
		return fmt.Errorf("unknown plot style %q", style)
	}
	return page.Render(w)
}

func xLabels(d *Dataset) []string {
	labels := make([]string, len(d.Commits))
	for i, id := range d.Commits {
		labels[i] = gitops.ShortID(id)
	}
	return labels
}

func trendChart(d *Dataset, metricID string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: metricID}),
		charts.WithYAxisOpts(opts.YAxis{Name: AxisLabel(metricID)}),
	)
	values := d.Trend(metricID)
	points := make([]opts.LineData, len(values))
	for i, v := range values {
		points[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(xLabels(d)).AddSeries(metricID, points)
	return line
}

func distChart(d *Dataset, metricID string) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: metricID}),
		charts.WithYAxisOpts(opts.YAxis{Name: AxisLabel(metricID)}),
	)
	data := make([]opts.BoxPlotData, len(d.Commits))
	for i, commit := range d.Commits {
		data[i] = opts.BoxPlotData{Value: fiveNumber(d.Samples(metricID, commit))}
	}
	box.SetXAxis(xLabels(d)).AddSeries(metricID, data)
	return box
}

// fiveNumber computes the [min, q1, median, q3, max] summary echarts box
// plots expect.
func fiveNumber(samples []float64) []float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return []float64{0, 0, 0, 0, 0}
	}
	return []float64{
		sorted[0],
		quantile(sorted, 0.25),
		quantile(sorted, 0.5),
		quantile(sorted, 0.75),
		sorted[n-1],
	}
}

// quantile interpolates linearly between the two nearest order statistics.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
