package slice

import (
	"fmt"
	"strings"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/columntype"
	"github.com/go-sif/ola/errors"
)

// rowImpl is a view over the values of a single Row within a Slice
type rowImpl struct {
	values []interface{}
	schema ola.Schema
}

// Schema returns the schema for a row
func (r *rowImpl) Schema() ola.Schema {
	return r.schema
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col ola.Column) error {
		if col.Index() > 0 {
			fmt.Fprint(&res, ", ")
		}
		v := r.values[col.Index()]
		if v == nil {
			fmt.Fprintf(&res, "\"%s\": nil", name)
		} else {
			fmt.Fprintf(&res, "\"%s\": %s", name, col.Type().ToString(v))
		}
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// IsNil returns true iff the given column value is nil in this row, or the column does not exist
func (r *rowImpl) IsNil(colName string) bool {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return true
	}
	return r.values[offset.Index()] == nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (col interface{}, err error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	return r.values[offset.Index()], nil
}

// GetFloat64 retrieves a numeric column value as a float64
func (r *rowImpl) GetFloat64(colName string) (col float64, err error) {
	v, err := r.getNotNil(colName)
	if err != nil {
		return 0, err
	}
	f, ok := columntype.ToFloat64(v)
	if !ok {
		return 0, errors.ValueTypeError{Name: colName, Value: v, Expected: "number"}
	}
	return f, nil
}

// GetInt64 retrieves an integer column value
func (r *rowImpl) GetInt64(colName string) (col int64, err error) {
	v, err := r.getNotNil(colName)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int64)
	if !ok {
		return 0, errors.ValueTypeError{Name: colName, Value: v, Expected: "int64"}
	}
	return i, nil
}

// GetBool retrieves a boolean column value
func (r *rowImpl) GetBool(colName string) (col bool, err error) {
	v, err := r.getNotNil(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.ValueTypeError{Name: colName, Value: v, Expected: "bool"}
	}
	return b, nil
}

// GetString returns the plain string form of a column value, with nil rendered as "null"
func (r *rowImpl) GetString(colName string) (col string, err error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return "", err
	}
	v := r.values[offset.Index()]
	if v == nil {
		return "null", nil
	}
	return offset.Type().ToString(v), nil
}

func (r *rowImpl) getNotNil(colName string) (interface{}, error) {
	v, err := r.Get(colName)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}
