package ola

// An Aggregator is a stateful reducer which consumes the Slices of a
// dataset one at a time, in order, and after each one emits an updated
// Estimate to its Sink. An Aggregator is constructed once with static
// configuration and zero state; ProcessSlice is its only mutator. There
// is no teardown: the last Estimate produced is the final answer once
// the dataset has been exhausted.
//
// Aggregators are not safe for concurrent use. Distinct Aggregators
// share no state, and may be driven in parallel.
type Aggregator interface {
	// ProcessSlice folds a Slice into this Aggregator's running state,
	// computes a new Estimate and passes it to the Sink exactly once.
	ProcessSlice(slice Slice) error
	// Estimate returns the most recently computed Estimate
	Estimate() Estimate
}

// A GroupKeyExtractor derives a hashable grouping value from a Row.
// The nil interface is the null group key.
type GroupKeyExtractor func(row Row) (key interface{}, err error)
