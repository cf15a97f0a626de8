package sink

import "github.com/go-sif/ola"

// Func adapts an ordinary function to the Sink interface
type Func func(estimate ola.Estimate) error

// Update calls f(estimate)
func (f Func) Update(estimate ola.Estimate) error {
	return f(estimate)
}

// Discard returns a Sink which ignores every Estimate
func Discard() ola.Sink {
	return Func(func(ola.Estimate) error { return nil })
}
