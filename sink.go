package ola

// A Sink receives each Estimate produced by an Aggregator, and
// renders or stores it. Update is called synchronously, so a slow
// Sink stalls ingestion for its Aggregator.
type Sink interface {
	Update(estimate Estimate) error
}
