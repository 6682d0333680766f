// Package store implements the commit-keyed results cache: loading and
// saving the persisted JSON document, deciding when metrics must be
// re-measured, and summarising or comparing cached records.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benchstash/benchstash/internal/metric"
)

var (
	// ErrCorruptStore means the persisted file exists but is not a valid
	// JSON object.
	ErrCorruptStore = errors.New("corrupt results store")

	// ErrNoRecord means a read-only operation needed a record that is not
	// in the store; the caller must run measurements first.
	ErrNoRecord = errors.New("no cached results")

	// ErrUnknownMetric means a single-metric filter matched none of the
	// supplied metrics. Raised before any measurement begins.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrZeroBaseline means the start side of a comparison reduced to
	// zero, leaving the percentage ratio undefined.
	ErrZeroBaseline = errors.New("comparison baseline is zero")
)

// nameKey is the reserved record entry holding the human-readable state
// description. It is never treated as a metric.
const nameKey = "name"

// Record holds every metric outcome captured for one repository-state
// identifier, plus the describe string recorded at measurement time.
type Record struct {
	Name    string
	Metrics map[string]metric.Outcome
}

// Store maps repository-state identifiers to their records. A record is
// replaced in full whenever its identifier is re-measured, never merged.
type Store struct {
	Results map[string]Record
}

// New returns an empty store.
func New() *Store {
	return &Store{Results: make(map[string]Record)}
}

// MarshalJSON flattens the reserved name entry into the same object as the
// metric outcomes, matching the persisted layout.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Metrics)+1)
	flat[nameKey] = r.Name
	for id, outcome := range r.Metrics {
		flat[id] = outcome
	}
	return json.Marshal(flat)
}

// UnmarshalJSON splits the reserved name entry back out from the metric
// outcomes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("record is not an object: %w", err)
	}
	rec := Record{Metrics: make(map[string]metric.Outcome, len(flat))}
	for key, raw := range flat {
		if key == nameKey {
			if err := json.Unmarshal(raw, &rec.Name); err != nil {
				return fmt.Errorf("record name is not a string: %w", err)
			}
			continue
		}
		var outcome metric.Outcome
		if err := json.Unmarshal(raw, &outcome); err != nil {
			return fmt.Errorf("metric %q: %w", key, err)
		}
		rec.Metrics[key] = outcome
	}
	*r = rec
	return nil
}
