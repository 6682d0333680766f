package metric

import (
	"fmt"

	"github.com/jmgilman/go/exec"
	"github.com/tidwall/gjson"
)

// JSONMetric runs a command that reports results as JSON on stdout and
// extracts a single numeric value by gjson path (e.g. "scores.accuracy").
// If the path resolves to an array of numbers the whole array is recorded
// as samples.
type JSONMetric struct {
	Name    string
	Command string
	Path    string
	Dir     string
}

func (m *JSONMetric) ID() string {
	return "json-" + m.Name
}

func (m *JSONMetric) Run() (Outcome, error) {
	res, err := exec.New(exec.WithInheritEnv()).WithDir(m.Dir).Run("sh", "-c", m.Command)
	if err != nil {
		return Outcome{}, fmt.Errorf("running %s: %w", m.ID(), err)
	}
	if !gjson.Valid(res.Stdout) {
		return Outcome{}, fmt.Errorf("%s: command output is not valid JSON", m.ID())
	}
	value := gjson.Get(res.Stdout, m.Path)
	if !value.Exists() {
		return Outcome{}, fmt.Errorf("%s: no value at path %q", m.ID(), m.Path)
	}
	if value.IsArray() {
		raw := value.Array()
		if len(raw) == 0 {
			return Outcome{}, fmt.Errorf("%s: empty array at path %q", m.ID(), m.Path)
		}
		samples := make([]float64, len(raw))
		for i, v := range raw {
			samples[i] = v.Float()
		}
		return Samples(samples), nil
	}
	return Scalar(value.Float()), nil
}
