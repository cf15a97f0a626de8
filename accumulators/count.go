package accumulators

import (
	"fmt"

	"github.com/go-sif/ola"
)

// Counter returns a new Count Accumulator, which counts all rows
func Counter() ola.Accumulator {
	return new(Count)
}

// NonNilCounter returns a factory for Count Accumulators which count the non-nil values of a column
func NonNilCounter(colName string) ola.AccumulatorFactory {
	return func() ola.Accumulator {
		return &Count{colName: colName}
	}
}

// Count counts records, or the non-nil values of a column
type Count struct {
	colName string
	count   uint64
}

// GetCount returns the row count from this Accumulator
func (a *Count) GetCount() uint64 {
	return a.count
}

// Accumulate adds a row to this Accumulator
func (a *Count) Accumulate(row ola.Row) error {
	if len(a.colName) > 0 && row.IsNil(a.colName) {
		return nil
	}
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o ola.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}
