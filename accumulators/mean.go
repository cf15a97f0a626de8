package accumulators

import (
	"fmt"
	"math"

	"github.com/go-sif/ola"
)

// Averager returns a factory for Mean Accumulators
func Averager(colName string) ola.AccumulatorFactory {
	return func() ola.Accumulator {
		return &Mean{colName: colName}
	}
}

// Mean tracks the sum and count of the non-nil values of a numeric column
type Mean struct {
	colName string
	sum     float64
	count   uint64
}

// GetSum returns the sum of observed values
func (a *Mean) GetSum() float64 {
	return a.sum
}

// GetCount returns the number of observed values
func (a *Mean) GetCount() uint64 {
	return a.count
}

// GetMean returns the mean of observed values, or NaN if there are none
func (a *Mean) GetMean() float64 {
	if a.count == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.count)
}

// Accumulate adds a row to this Accumulator
func (a *Mean) Accumulate(row ola.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	a.sum += v
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Mean) Merge(o ola.Accumulator) error {
	ca, ok := o.(*Mean)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Mean Accumulator")
	}
	a.sum += ca.sum
	a.count += ca.count
	return nil
}
