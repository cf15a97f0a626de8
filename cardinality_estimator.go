package ola

// A CardinalityEstimator gives an approximate count of the distinct
// values added to it, with a relative error bounded by its precision.
// Adding the same value any number of times affects the estimate no
// more than adding it once.
type CardinalityEstimator interface {
	Add(value string)     // Add adds a value to the observed set
	Cardinality() float64 // Cardinality returns the approximate number of distinct values added so far
}
