package vis_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/benchstash/benchstash/internal/metric"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/benchstash/benchstash/internal/vis"
)

func sampleResults() map[string]store.Record {
	return map[string]store.Record{
		"aaa111": {
			Name: "v1",
			Metrics: map[string]metric.Outcome{
				"timeit-sort":   metric.Samples([]float64{0.5, 0.4, 0.6}),
				"linecount-src": metric.Scalar(1200),
			},
		},
		"bbb222": {
			Name: "v2",
			Metrics: map[string]metric.Outcome{
				"timeit-sort": metric.Samples([]float64{0.3, 0.35}),
			},
		},
	}
}

func TestSelectDefaultsToSharedMetrics(t *testing.T) {
	d, err := vis.Select(sampleResults(), nil, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !reflect.DeepEqual(d.Metrics, []string{"timeit-sort"}) {
		t.Errorf("metrics: got %v, want only the shared metric", d.Metrics)
	}
	if !reflect.DeepEqual(d.Commits, []string{"aaa111", "bbb222"}) {
		t.Errorf("commits: got %v", d.Commits)
	}
}

func TestSelectExplicit(t *testing.T) {
	d, err := vis.Select(sampleResults(), []string{"aaa111"}, []string{"linecount-src"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := d.Trend("linecount-src"); !reflect.DeepEqual(got, []float64{1200}) {
		t.Errorf("trend: got %v", got)
	}
}

func TestSelectUnknownCommit(t *testing.T) {
	if _, err := vis.Select(sampleResults(), []string{"zzz999"}, nil); err == nil {
		t.Fatal("expected error for unrecorded commit")
	}
}

func TestSelectMetricMissingFromCommit(t *testing.T) {
	_, err := vis.Select(sampleResults(), nil, []string{"linecount-src"})
	if err == nil {
		t.Fatal("expected error: linecount-src not recorded for bbb222")
	}
}

func TestTrendCollapsesToMin(t *testing.T) {
	d, err := vis.Select(sampleResults(), []string{"aaa111", "bbb222"}, []string{"timeit-sort"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := d.Trend("timeit-sort"); !reflect.DeepEqual(got, []float64{0.4, 0.3}) {
		t.Errorf("trend: got %v, want [0.4 0.3]", got)
	}
}

func TestAxisLabel(t *testing.T) {
	cases := map[string]string{
		"timeit-sort":    "Time (s)",
		"linecount-src":  "Number of lines",
		"memoryuse-load": "Memory (MB)",
		"mystery-thing":  "Value",
	}
	for id, want := range cases {
		if got := vis.AxisLabel(id); got != want {
			t.Errorf("AxisLabel(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestRenderProducesHTML(t *testing.T) {
	d, err := vis.Select(sampleResults(), nil, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for _, style := range []string{"basic", "dist"} {
		var buf bytes.Buffer
		if err := vis.Render(d, style, &buf); err != nil {
			t.Fatalf("Render(%s): %v", style, err)
		}
		out := buf.String()
		if !strings.Contains(out, "<html") {
			t.Errorf("%s: output is not an HTML page", style)
		}
		if !strings.Contains(out, "timeit-sort") {
			t.Errorf("%s: chart missing series name", style)
		}
	}
}

func TestRenderUnknownStyle(t *testing.T) {
	d, err := vis.Select(sampleResults(), nil, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := vis.Render(d, "sparkline", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown style")
	}
}
