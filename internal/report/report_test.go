package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benchstash/benchstash/internal/report"
	"github.com/benchstash/benchstash/internal/store"
)

var entries = []store.SummaryEntry{
	{MetricID: "linecount-src", Value: 1234},
	{MetricID: "timeit-sort", Value: 0.4},
}

var comps = []store.Comparison{
	{MetricID: "linecount-src", Start: 1234, End: 1234, NoChange: true},
	{MetricID: "timeit-sort", Start: 0.4, End: 0.3, Percent: 75},
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteSummary("abc123", "v1", entries, "table", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"v1", "abc123", "timeit-sort", "0.4", "METRIC"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteSummary("abc123", "v1", entries, "markdown", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if !strings.Contains(buf.String(), "| timeit-sort | 0.4 |") {
		t.Errorf("markdown output missing row:\n%s", buf.String())
	}
}

func TestSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteSummary("abc123", "v1", entries, "json", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	var decoded struct {
		ID      string               `json:"id"`
		Name    string               `json:"name"`
		Metrics []store.SummaryEntry `json:"metrics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != "abc123" || len(decoded.Metrics) != 2 {
		t.Errorf("unexpected JSON payload: %+v", decoded)
	}
}

func TestComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteComparison("abc123", "def456", comps, "table", &buf); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"no change", "75%", "0.4", "0.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestComparisonMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteComparison("abc123", "def456", comps, "markdown", &buf); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}
	if !strings.Contains(buf.String(), "| timeit-sort | 0.4 | 0.3 | 75% |") {
		t.Errorf("markdown output missing row:\n%s", buf.String())
	}
}
