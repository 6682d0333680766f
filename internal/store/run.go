package store

import (
	"fmt"
	"io"

	"github.com/benchstash/benchstash/internal/gitops"
	"github.com/benchstash/benchstash/internal/metric"
)

// State is the repository state being measured: a cache identifier and a
// display name for the record. gitops provides the git-backed
// implementation; tests supply fixed values.
type State interface {
	// ID returns the cache key for the current repository state.
	ID() string
	// Describe returns the human-readable name recorded alongside the
	// outcomes. It is only consulted when measurement actually happens,
	// and its failure aborts the run.
	Describe() (string, error)
}

// RunOptions control a measurement run.
type RunOptions struct {
	// Force re-measures even when a trusted record already exists.
	Force bool
	// Only restricts execution to the metric with this identifier. The
	// replacement record then contains only that metric.
	Only string
	// Progress, when set, receives per-metric progress lines.
	Progress io.Writer
}

// Run measures metrics for the given repository state if needed and
// replaces the state's record with the fresh outcomes. Measurement happens
// when forced, when the state has no record yet, or when the identifier is
// dirty — a dirty tree may have changed again since it was last measured,
// so its cached record is never trusted.
//
// The returned bool reports whether measurement happened. A metric failure
// propagates immediately and leaves the store unchanged for this attempt.
func (s *Store) Run(state State, metrics []metric.Metric, opts RunOptions) (bool, error) {
	if opts.Only != "" && !hasMetric(metrics, opts.Only) {
		return false, fmt.Errorf("%w: %q", ErrUnknownMetric, opts.Only)
	}

	id := state.ID()
	_, cached := s.Results[id]
	switch {
	case opts.Force:
		s.logf(opts, "Forced run of metrics\n")
	case !cached:
		s.logf(opts, "First run of metrics\n")
	case gitops.IsDirty(id):
		s.logf(opts, "Working tree is dirty - re-running metrics\n")
	default:
		return false, nil
	}

	name, err := state.Describe()
	if err != nil {
		return false, fmt.Errorf("describing repository state: %w", err)
	}

	rec := Record{Name: name, Metrics: make(map[string]metric.Outcome)}
	for _, m := range metrics {
		if opts.Only != "" && m.ID() != opts.Only {
			continue
		}
		s.logf(opts, "%s ...", m.ID())
		outcome, err := m.Run()
		if err != nil {
			s.logf(opts, " failed\n")
			return false, err
		}
		s.logf(opts, " done\n")
		rec.Metrics[m.ID()] = outcome
	}
	s.Results[id] = rec
	return true, nil
}

func (s *Store) logf(opts RunOptions, format string, args ...any) {
	if opts.Progress != nil {
		fmt.Fprintf(opts.Progress, format, args...)
	}
}

func hasMetric(metrics []metric.Metric, id string) bool {
	for _, m := range metrics {
		if m.ID() == id {
			return true
		}
	}
	return false
}
