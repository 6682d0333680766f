// Package report renders summaries and comparisons as text tables,
// markdown, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/benchstash/benchstash/internal/store"
)

// WriteSummary renders one record's reduced metric values.
func WriteSummary(id, name string, entries []store.SummaryEntry, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return summaryMarkdown(id, name, entries, w)
	case "json":
		return writeJSON(struct {
			ID      string               `json:"id"`
			Name    string               `json:"name"`
			Metrics []store.SummaryEntry `json:"metrics"`
		}{id, name, entries}, w)
	default:
		return summaryTable(id, name, entries, w)
	}
}

// WriteComparison renders the metric deltas between two records.
func WriteComparison(startID, endID string, comps []store.Comparison, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return comparisonMarkdown(startID, endID, comps, w)
	case "json":
		return writeJSON(struct {
			Start   string             `json:"start"`
			End     string             `json:"end"`
			Metrics []store.Comparison `json:"metrics"`
		}{startID, endID, comps}, w)
	default:
		return comparisonTable(startID, endID, comps, w)
	}
}

func summaryTable(id, name string, entries []store.SummaryEntry, w io.Writer) error {
	fmt.Fprintf(w, "%s (%s)\n", name, id)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintln(tw, strings.Repeat("-", 40))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%v\n", e.MetricID, e.Value)
	}
	return tw.Flush()
}

func summaryMarkdown(id, name string, entries []store.SummaryEntry, w io.Writer) error {
	fmt.Fprintf(w, "## %s (`%s`)\n\n", name, id)
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|---|---|")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %v |\n", e.MetricID, e.Value)
	}
	return nil
}

func comparisonTable(startID, endID string, comps []store.Comparison, w io.Writer) error {
	fmt.Fprintf(w, "%s -> %s\n", startID, endID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tSTART\tEND\tCHANGE")
	fmt.Fprintln(tw, strings.Repeat("-", 50))
	for _, c := range comps {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\n", c.MetricID, c.Start, c.End, changeCell(c))
	}
	return tw.Flush()
}

func comparisonMarkdown(startID, endID string, comps []store.Comparison, w io.Writer) error {
	fmt.Fprintf(w, "## `%s` -> `%s`\n\n", startID, endID)
	fmt.Fprintln(w, "| Metric | Start | End | Change |")
	fmt.Fprintln(w, "|---|---|---|---|")
	for _, c := range comps {
		fmt.Fprintf(w, "| %s | %v | %v | %s |\n", c.MetricID, c.Start, c.End, changeCell(c))
	}
	return nil
}

func changeCell(c store.Comparison) string {
	if c.NoChange {
		return "no change"
	}
	return fmt.Sprintf("%d%%", c.Percent)
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
