package ola

// An Accumulator siphons values from Rows into a custom data
// structure holding running sufficient statistics (a sum, a count,
// a mean). Aggregators compute slice-local Accumulators and Merge
// them into their running state, so that a failed Slice never
// leaves partial statistics behind.
type Accumulator interface {
	Accumulate(row Row) error  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
}

// An AccumulatorFactory produces fresh, zero-valued Accumulators
type AccumulatorFactory func() Accumulator
