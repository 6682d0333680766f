// Package vis turns stored results into charts: a per-metric trend line
// over commits, or the distribution of raw samples per commit.
package vis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benchstash/benchstash/internal/store"
)

// Axis unit labels keyed by metric-id prefix.
var yAxisLabels = map[string]string{
	"timeit":    "Time (s)",
	"container": "Time (s)",
	"linecount": "Number of lines",
	"lint":      "Lint score",
	"memoryuse": "Memory (MB)",
	"json":      "Value",
}

// Dataset is the selected slice of a store, reshaped for plotting.
type Dataset struct {
	Commits []string // plot order
	Metrics []string // sorted metric identifiers
	results map[string]store.Record
}

// Select picks the commits and metrics to plot. Nil commits selects every
// identifier in the store (sorted, since the store itself is unordered;
// pass commits explicitly for a meaningful timeline). Nil metrics selects
// the metrics present in every selected run, so partially measured commits
// do not leave holes in a series.
func Select(results map[string]store.Record, commits, metrics []string) (*Dataset, error) {
	if len(commits) == 0 {
		for id := range results {
			commits = append(commits, id)
		}
		sort.Strings(commits)
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("store has no results to plot")
	}
	for _, id := range commits {
		if _, ok := results[id]; !ok {
			return nil, fmt.Errorf("%w for %s", store.ErrNoRecord, id)
		}
	}

	if len(metrics) == 0 {
		metrics = commonMetrics(results, commits)
		if len(metrics) == 0 {
			return nil, fmt.Errorf("selected commits share no metrics")
		}
	} else {
		for _, m := range metrics {
			for _, id := range commits {
				if _, ok := results[id].Metrics[m]; !ok {
					return nil, fmt.Errorf("commit %s has no metric %q", id, m)
				}
			}
		}
		sort.Strings(metrics)
	}

	return &Dataset{Commits: commits, Metrics: metrics, results: results}, nil
}

// commonMetrics returns the metric identifiers present in every selected
// run, sorted.
func commonMetrics(results map[string]store.Record, commits []string) []string {
	counts := make(map[string]int)
	for _, id := range commits {
		for m := range results[id].Metrics {
			counts[m]++
		}
	}
	var common []string
	for m, n := range counts {
		if n == len(commits) {
			common = append(common, m)
		}
	}
	sort.Strings(common)
	return common
}

// Trend returns the metric's min-collapsed value for each selected commit,
// in plot order.
func (d *Dataset) Trend(metricID string) []float64 {
	values := make([]float64, len(d.Commits))
	for i, id := range d.Commits {
		values[i] = d.results[id].Metrics[metricID].Best()
	}
	return values
}

// Samples returns the metric's raw sample values for one commit.
func (d *Dataset) Samples(metricID, commit string) []float64 {
	return d.results[commit].Metrics[metricID].Values()
}

// AxisLabel maps a metric identifier to its y-axis unit label.
func AxisLabel(metricID string) string {
	prefix, _, _ := strings.Cut(metricID, "-")
	if label, ok := yAxisLabels[prefix]; ok {
		return label
	}
	return "Value"
}
