// Package aggregators contains ola's built-in Aggregators: point and filtered averages,
// grouped averages, scale-corrected grouped sums and counts, and filtered approximate
// distinct counts. Every Aggregator emits an Estimate to its Sink after each Slice.
//
// An undefined aggregate, such as the average of zero observations, is reported as NaN
// rather than as an error.
package aggregators
