package metric

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jmgilman/go/exec"
)

// Default extraction matches pylint's report footer, e.g.
// "Your code has been rated at 9.18/10".
var defaultScorePattern = regexp.MustCompile(`rated at (-?[0-9.]+)/`)

// LintMetric runs a lint command and extracts a numeric score from its
// output with a regexp whose first capture group is the value. A lint run
// that exits nonzero scores 0 rather than failing the whole measurement
// run, mirroring how a badly rated tree should still be recordable.
type LintMetric struct {
	Name    string
	Command string
	Pattern string
	Dir     string
}

func (m *LintMetric) ID() string {
	return "lint-" + m.Name
}

func (m *LintMetric) Run() (Outcome, error) {
	pattern := defaultScorePattern
	if m.Pattern != "" {
		var err error
		pattern, err = regexp.Compile(m.Pattern)
		if err != nil {
			return Outcome{}, fmt.Errorf("score pattern for %s: %w", m.ID(), err)
		}
	}

	res, err := exec.New(exec.WithInheritEnv()).WithDir(m.Dir).Run("sh", "-c", m.Command)
	if err != nil {
		var execErr *exec.ExecError
		if errors.As(err, &execErr) && execErr.ExitCode > 0 {
			return Scalar(0), nil
		}
		return Outcome{}, fmt.Errorf("running %s: %w", m.ID(), err)
	}

	score, err := ParseScore(res.Combined, pattern)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", m.ID(), err)
	}
	return Scalar(score), nil
}

// ParseScore extracts the first capture group of pattern from output as a
// float.
func ParseScore(output string, pattern *regexp.Regexp) (float64, error) {
	match := pattern.FindStringSubmatch(output)
	if len(match) < 2 {
		return 0, fmt.Errorf("no score matching %q in lint output", pattern)
	}
	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing score %q: %w", match[1], err)
	}
	return score, nil
}
