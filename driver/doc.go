// Package driver delivers the Slices of a dataset to a set of Aggregators, in order,
// processing each Slice with a bounded number of Aggregators in parallel
package driver
