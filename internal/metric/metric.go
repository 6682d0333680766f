// Package metric defines the measurement capability consumed by the results
// cache and the concrete metric kinds built on it.
package metric

// Metric is a named, independently invocable measurement. The cache core is
// agnostic to how a metric measures anything: it only needs a stable
// identifier and a zero-argument run producing an Outcome.
type Metric interface {
	ID() string
	Run() (Outcome, error)
}
