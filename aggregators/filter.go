package aggregators

import (
	"github.com/go-sif/ola"
	"github.com/go-sif/ola/columntype"
)

// filter keeps rows whose column value equals a configured value
type filter struct {
	column string
	value  interface{}
}

// matches returns true iff the row's filter column equals the filter value. Numeric values
// are compared numerically, regardless of their Go type. Nil never equals anything.
func (f *filter) matches(row ola.Row) (bool, error) {
	if f.value == nil || row.IsNil(f.column) {
		return false, nil
	}
	v, err := row.Get(f.column)
	if err != nil {
		return false, err
	}
	return valuesEqual(v, f.value), nil
}

func valuesEqual(a, b interface{}) bool {
	af, aNumeric := columntype.ToFloat64(a)
	bf, bNumeric := columntype.ToFloat64(b)
	if aNumeric || bNumeric {
		return aNumeric && bNumeric && af == bf
	}
	return a == b
}
