package aggregators

import (
	"fmt"
	"reflect"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/errors"
	"github.com/go-sif/ola/logging"
)

// columnRole describes how an Aggregator uses a configured column
type columnRole struct {
	role    string
	name    string
	numeric bool
}

// aggregator holds the bookkeeping shared by all Aggregators: the Sink, the last
// Estimate, and the terminal configuration error, if one has occurred.
type aggregator struct {
	name      string
	sink      ola.Sink
	logger    *logging.Logger
	columns   []columnRole
	err       error
	estimate  ola.Estimate
	numSlices int
}

func createAggregator(name string, sink ola.Sink, conf *Conf, columns ...columnRole) (*aggregator, error) {
	a := &aggregator{
		name:    name,
		sink:    sink,
		logger:  conf.Logger.With(name),
		columns: columns,
	}
	if sink == nil {
		return nil, a.configurationError("a Sink is required", nil)
	}
	for _, col := range columns {
		if len(col.name) == 0 {
			return nil, a.configurationError(fmt.Sprintf("%s column is required", col.role), nil)
		}
	}
	if conf.Schema != nil {
		if err := a.checkSchema(conf.Schema); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Estimate returns the most recently computed Estimate. It is empty until the first Slice has been processed.
func (a *aggregator) Estimate() ola.Estimate {
	return a.estimate.Clone()
}

// NumSlicesProcessed returns the number of Slices successfully folded into this Aggregator
func (a *aggregator) NumSlicesProcessed() int {
	return a.numSlices
}

// begin validates a Slice before any state is touched. Once a ConfigurationError
// has occurred, every subsequent call returns it.
func (a *aggregator) begin(s ola.Slice) error {
	if a.err != nil {
		return a.err
	}
	if err := a.checkSchema(s.Schema()); err != nil {
		a.err = err
		a.logger.Errorf("%v", err)
		return err
	}
	return nil
}

func (a *aggregator) checkSchema(schema ola.Schema) error {
	for _, col := range a.columns {
		offset, err := schema.GetOffset(col.name)
		if err != nil {
			return a.configurationError(fmt.Sprintf("%s column %s", col.role, col.name), err)
		}
		if col.numeric && !offset.Type().IsNumeric() {
			return a.configurationError(fmt.Sprintf("%s column %s has non-numeric type %s", col.role, col.name, offset.Type().Name()), nil)
		}
	}
	return nil
}

// rowError describes a Slice which was rejected without modifying state
func (a *aggregator) rowError(s ola.Slice, err error) error {
	a.logger.Warnf("rejected slice %s: %v", s.ID(), err)
	return fmt.Errorf("%s could not process slice %s: %w", a.name, s.ID(), err)
}

// emit records a new Estimate and passes it to the Sink
func (a *aggregator) emit(s ola.Slice, estimate ola.Estimate) error {
	a.estimate = estimate
	a.numSlices++
	if a.logger.Enabled(logging.DebugLevel) {
		a.logger.Debugf("slice %d (%s, %d rows): %s", a.numSlices, s.ID(), s.GetNumRows(), estimate.ToString())
	}
	if err := a.sink.Update(estimate.Clone()); err != nil {
		return fmt.Errorf("%s could not update sink: %w", a.name, err)
	}
	return nil
}

func (a *aggregator) configurationError(reason string, err error) error {
	return &errors.ConfigurationError{Aggregator: a.name, Reason: reason, Err: err}
}

func isComparable(v interface{}) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}
