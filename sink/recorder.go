package sink

import (
	"sync"

	"github.com/go-sif/ola"
)

// Recorder is a Sink which keeps every Estimate it receives, in order
type Recorder struct {
	lock      sync.Mutex
	estimates []ola.Estimate
}

// CreateRecorder returns a new, empty Recorder
func CreateRecorder() *Recorder {
	return &Recorder{estimates: []ola.Estimate{}}
}

// Update records an Estimate
func (r *Recorder) Update(estimate ola.Estimate) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.estimates = append(r.estimates, estimate.Clone())
	return nil
}

// GetEstimates returns every Estimate received so far
func (r *Recorder) GetEstimates() []ola.Estimate {
	r.lock.Lock()
	defer r.lock.Unlock()
	res := make([]ola.Estimate, len(r.estimates))
	copy(res, r.estimates)
	return res
}

// Len returns the number of Estimates received so far
func (r *Recorder) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.estimates)
}

// Last returns the most recent Estimate, if any have been received
func (r *Recorder) Last() (ola.Estimate, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.estimates) == 0 {
		return ola.Estimate{}, false
	}
	return r.estimates[len(r.estimates)-1], true
}
