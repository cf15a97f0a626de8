package sink

import (
	"github.com/go-sif/ola"
	"github.com/hashicorp/go-multierror"
)

type tee struct {
	sinks []ola.Sink
}

// Tee returns a Sink which forwards every Estimate to each of the given Sinks, in
// order. Every Sink is updated even if an earlier one fails; failures are combined.
func Tee(sinks ...ola.Sink) ola.Sink {
	return &tee{sinks: sinks}
}

// Update forwards an Estimate to every Sink
func (t *tee) Update(estimate ola.Estimate) error {
	var multierr *multierror.Error
	for _, s := range t.sinks {
		if err := s.Update(estimate.Clone()); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}
