package store

import (
	"fmt"
	"math"
	"sort"
)

// SummaryEntry is one metric's representative value for a single record.
type SummaryEntry struct {
	MetricID string  `json:"metric"`
	Value    float64 `json:"value"`
}

// Comparison is one metric's delta between two records. Percent is the
// end/start ratio as a rounded percentage and is meaningless when NoChange
// is set.
type Comparison struct {
	MetricID string  `json:"metric"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	NoChange bool    `json:"no_change"`
	Percent  int     `json:"percent,omitempty"`
}

// Summary reports each metric of the record for id, sample lists reduced to
// their minimum. Entries come back sorted by metric identifier. only, when
// non-empty, restricts the output to a single metric.
func (s *Store) Summary(id, only string) ([]SummaryEntry, error) {
	rec, ok := s.Results[id]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoRecord, id)
	}
	var entries []SummaryEntry
	for metricID, outcome := range rec.Metrics {
		if only != "" && metricID != only {
			continue
		}
		entries = append(entries, SummaryEntry{MetricID: metricID, Value: outcome.Best()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MetricID < entries[j].MetricID
	})
	return entries, nil
}

// Compare reports the percentage delta between the records for startID and
// endID, covering only the metrics present on both sides: a metric measured
// on just one side is silently excluded, so stores recorded with differing
// metric sets over time stay comparable. Values equal after min-reduction
// report no change. A zero start-side value wraps ErrZeroBaseline rather
// than producing an infinite ratio.
func (s *Store) Compare(startID, endID, only string) ([]Comparison, error) {
	startRec, ok := s.Results[startID]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoRecord, startID)
	}
	endRec, ok := s.Results[endID]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoRecord, endID)
	}

	var shared []string
	for metricID := range startRec.Metrics {
		if _, ok := endRec.Metrics[metricID]; !ok {
			continue
		}
		if only != "" && metricID != only {
			continue
		}
		shared = append(shared, metricID)
	}
	sort.Strings(shared)

	comparisons := make([]Comparison, 0, len(shared))
	for _, metricID := range shared {
		start := startRec.Metrics[metricID].Best()
		end := endRec.Metrics[metricID].Best()
		c := Comparison{MetricID: metricID, Start: start, End: end}
		if start == end {
			c.NoChange = true
		} else {
			if start == 0 {
				return nil, fmt.Errorf("%w: metric %s at %s", ErrZeroBaseline, metricID, startID)
			}
			c.Percent = int(math.Round(end / start * 100))
		}
		comparisons = append(comparisons, c)
	}
	return comparisons, nil
}
