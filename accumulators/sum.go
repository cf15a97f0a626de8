package accumulators

import (
	"fmt"

	"github.com/go-sif/ola"
)

// Adder returns a factory for Sum Accumulators
func Adder(colName string) ola.AccumulatorFactory {
	return func() ola.Accumulator {
		return &Sum{colName: colName}
	}
}

// Sum sums the non-nil values of a numeric column
type Sum struct {
	colName string
	sum     float64
}

// GetSum returns the row Sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row ola.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	a.sum += v
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o ola.Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += ca.sum
	return nil
}
