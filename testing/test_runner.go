package testing

import (
	"context"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/aggregators"
	"github.com/go-sif/ola/driver"
	"github.com/go-sif/ola/sink"
)

// LocalRun runs one Aggregator of each given Kind over a SliceIterator, with a shared
// configuration, returning the Recorder which received each Aggregator's Estimates
func LocalRun(ctx context.Context, it ola.SliceIterator, conf *aggregators.Conf, driverConf *driver.Conf, kinds ...aggregators.Kind) (result []*sink.Recorder, err error) {
	// handle panics
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				panic(r)
			}
		}
	}()

	recorders := make([]*sink.Recorder, len(kinds))
	aggs := make([]ola.Aggregator, len(kinds))
	for i, kind := range kinds {
		recorders[i] = sink.CreateRecorder()
		aggs[i], err = aggregators.Create(kind, recorders[i], conf)
		if err != nil {
			return nil, err
		}
	}
	d, err := driver.CreateDriver(driverConf, aggs...)
	if err != nil {
		return nil, err
	}
	return recorders, d.Run(ctx, it)
}

// FinalValues returns the values of the last Estimate received by each Recorder
func FinalValues(recorders []*sink.Recorder) [][]float64 {
	res := make([][]float64, len(recorders))
	for i, r := range recorders {
		if last, ok := r.Last(); ok {
			res[i] = last.Values
		}
	}
	return res
}
