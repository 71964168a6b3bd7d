package analysis

import "strconv"

// Metric is a count that may be marked as not computable from the
// available relations. Some sub-counts (limited-partner affiliations,
// several null-country breakdowns) have no loadable join path in the
// export; they are distinguishable from a true zero here, even though
// the CSV schema renders both as 0.
type Metric struct {
	value      int
	computable bool
}

// Count returns a computable metric with the given value.
func Count(value int) Metric {
	return Metric{value: value, computable: true}
}

// NotComputable returns a metric marked as not derivable from the
// available relations.
func NotComputable() Metric {
	return Metric{}
}

// Value returns the count, or 0 when the metric is not computable.
func (m Metric) Value() int {
	return m.value
}

// Computable reports whether the metric was actually derived from data.
func (m Metric) Computable() bool {
	return m.computable
}

// String renders the metric for console output. Non-computable metrics
// show as "n/a" rather than 0.
func (m Metric) String() string {
	if !m.computable {
		return "n/a"
	}
	return strconv.Itoa(m.value)
}
