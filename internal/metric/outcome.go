package metric

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of running one metric once: either a single scalar
// or an ordered list of repeated-trial samples. These are the only two
// shapes the cache, summary and comparison logic accept.
type Outcome struct {
	scalar  float64
	samples []float64
}

// Scalar wraps a single measured value.
func Scalar(v float64) Outcome {
	return Outcome{scalar: v}
}

// Samples wraps a list of repeated-trial measurements. The list must be
// non-empty; consumers reduce it to its minimum.
func Samples(v []float64) Outcome {
	return Outcome{samples: v}
}

// IsSamples reports whether the outcome is sample-valued.
func (o Outcome) IsSamples() bool {
	return o.samples != nil
}

// Values returns the raw samples, or a single-element slice for scalars.
func (o Outcome) Values() []float64 {
	if o.samples != nil {
		return o.samples
	}
	return []float64{o.scalar}
}

// Best reduces the outcome to its representative value: the minimum sample
// for sample-valued outcomes, the scalar itself otherwise. The minimum is
// the natural choice for timing and memory figures; it is applied uniformly
// to every metric for compatibility with existing stores.
func (o Outcome) Best() float64 {
	if o.samples == nil {
		return o.scalar
	}
	best := o.samples[0]
	for _, v := range o.samples[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

// MarshalJSON encodes a scalar as a JSON number and samples as an array.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.samples != nil {
		return json.Marshal(o.samples)
	}
	return json.Marshal(o.scalar)
}

// UnmarshalJSON accepts a JSON number or a non-empty array of numbers. An
// empty array is rejected: every consumer reduces samples to their minimum,
// which has no value to take.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var samples []float64
		if err := json.Unmarshal(data, &samples); err != nil {
			return fmt.Errorf("parsing sample list: %w", err)
		}
		if len(samples) == 0 {
			return fmt.Errorf("empty sample list")
		}
		*o = Outcome{samples: samples}
		return nil
	}
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("parsing scalar value: %w", err)
	}
	*o = Outcome{scalar: scalar}
	return nil
}
