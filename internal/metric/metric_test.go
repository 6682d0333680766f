package metric_test

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	"github.com/benchstash/benchstash/internal/metric"
)

func TestLineCountFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\ntwo\nthree\n"), 0o644)
	m := &metric.LineCountMetric{Path: "a.txt", Dir: dir}
	if m.ID() != "linecount-a.txt" {
		t.Errorf("ID: got %q", m.ID())
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 3 {
		t.Errorf("got %v lines, want 3", got)
	}
}

func TestLineCountTree(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "src", "sub"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "a.go"), []byte("1\n2\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "sub", "b.go"), []byte("1\n2\n3\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "notes.md"), []byte("1\n"), 0o644)

	m := &metric.LineCountMetric{Path: "src", Dir: dir, Extensions: []string{".go"}}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 5 {
		t.Errorf("got %v lines, want 5 (.md excluded)", got)
	}
}

func TestLineCountMissingPath(t *testing.T) {
	m := &metric.LineCountMetric{Path: "nope.txt", Dir: t.TempDir()}
	if _, err := m.Run(); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestParseScore(t *testing.T) {
	pylint := regexp.MustCompile(`rated at (-?[0-9.]+)/`)
	out := "************* Module foo\nYour code has been rated at 9.18/10 (previous run: 9.02/10)\n"
	score, err := metric.ParseScore(out, pylint)
	if err != nil {
		t.Fatalf("ParseScore: %v", err)
	}
	if score != 9.18 {
		t.Errorf("got %v, want 9.18", score)
	}

	if _, err := metric.ParseScore("no rating here", pylint); err == nil {
		t.Error("expected error when output has no score line")
	}
}

func TestLintMetric(t *testing.T) {
	m := &metric.LintMetric{
		Name:    "demo",
		Command: `echo "Your code has been rated at 7.50/10"`,
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 7.5 {
		t.Errorf("got %v, want 7.5", got)
	}
}

func TestLintMetricNonzeroExitScoresZero(t *testing.T) {
	m := &metric.LintMetric{Name: "bad", Command: "exit 4"}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 0 {
		t.Errorf("got %v, want 0 for failing lint", got)
	}
}

func TestLintMetricCustomPattern(t *testing.T) {
	m := &metric.LintMetric{
		Name:    "custom",
		Command: `echo "issues: 42"`,
		Pattern: `issues: ([0-9]+)`,
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestJSONMetric(t *testing.T) {
	m := &metric.JSONMetric{
		Name:    "accuracy",
		Command: `echo '{"scores": {"accuracy": 0.93}}'`,
		Path:    "scores.accuracy",
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got != 0.93 {
		t.Errorf("got %v, want 0.93", got)
	}
}

func TestJSONMetricArray(t *testing.T) {
	m := &metric.JSONMetric{
		Name:    "latencies",
		Command: `echo '{"ms": [12, 8, 15]}'`,
		Path:    "ms",
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.IsSamples() {
		t.Fatal("expected sample-valued outcome")
	}
	if got := out.Best(); got != 8 {
		t.Errorf("got %v, want 8", got)
	}
}

func TestJSONMetricEmptyArray(t *testing.T) {
	m := &metric.JSONMetric{Name: "x", Command: `echo '{"ms": []}'`, Path: "ms"}
	if _, err := m.Run(); err == nil {
		t.Fatal("expected error for empty array value")
	}
}

func TestJSONMetricBadPath(t *testing.T) {
	m := &metric.JSONMetric{Name: "x", Command: `echo '{"a": 1}'`, Path: "b.c"}
	if _, err := m.Run(); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestJSONMetricInvalidOutput(t *testing.T) {
	m := &metric.JSONMetric{Name: "x", Command: `echo not-json`, Path: "a"}
	if _, err := m.Run(); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestTimeMetric(t *testing.T) {
	m := &metric.TimeMetric{Name: "noop", Command: "true", Repeat: 3, Number: 1}
	if m.ID() != "timeit-noop" {
		t.Errorf("ID: got %q", m.ID())
	}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	samples := out.Values()
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	for _, s := range samples {
		if s < 0 {
			t.Errorf("negative sample %v", s)
		}
	}
}

func TestTimeMetricMeasuresDuration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sleep-based timing test")
	}
	m := &metric.TimeMetric{Name: "sleep", Command: "sleep 0.1", Repeat: 1}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got < 0.05 {
		t.Errorf("sample %v shorter than the slept duration", got)
	}
}

func TestTimeMetricCommandFailure(t *testing.T) {
	m := &metric.TimeMetric{Name: "boom", Command: "exit 3", Repeat: 1}
	if _, err := m.Run(); err == nil {
		t.Fatal("expected error for failing command")
	}
}

func TestMemoryMetric(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("rusage accounting requires a unix platform")
	}
	m := &metric.MemoryMetric{Name: "noop", Command: "true"}
	out, err := m.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.Best(); got <= 0 {
		t.Errorf("peak RSS %v MB, want > 0", got)
	}
}
