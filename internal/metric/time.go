package metric

import (
	"fmt"
	"time"

	"github.com/jmgilman/go/exec"
)

// TimeMetric measures the wall-clock time of a shell command. It produces
// Repeat samples, each timing Number back-to-back executions and reporting
// the per-execution average in seconds. An optional setup command runs once
// before sampling begins and is not timed.
type TimeMetric struct {
	Name    string
	Command string
	Setup   string
	Repeat  int
	Number  int
	Dir     string
	Env     map[string]string
}

func (m *TimeMetric) ID() string {
	return "timeit-" + m.Name
}

func (m *TimeMetric) Run() (Outcome, error) {
	repeat := m.Repeat
	if repeat < 1 {
		repeat = 1
	}
	number := m.Number
	if number < 1 {
		number = 1
	}

	if m.Setup != "" {
		if _, err := m.executor().Run("sh", "-c", m.Setup); err != nil {
			return Outcome{}, fmt.Errorf("setup for %s: %w", m.ID(), err)
		}
	}

	samples := make([]float64, 0, repeat)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		for n := 0; n < number; n++ {
			if _, err := m.executor().Run("sh", "-c", m.Command); err != nil {
				return Outcome{}, fmt.Errorf("running %s: %w", m.ID(), err)
			}
		}
		samples = append(samples, time.Since(start).Seconds()/float64(number))
	}
	return Samples(samples), nil
}

func (m *TimeMetric) executor() exec.Executor {
	e := exec.New(exec.WithInheritEnv()).WithDir(m.Dir)
	if len(m.Env) > 0 {
		e = e.WithEnv(m.Env)
	}
	return e
}
