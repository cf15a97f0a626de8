package slice

import (
	"fmt"
	"log"
	"math"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/errors"
	uuid "github.com/gofrs/uuid"
)

const defaultCapacity = 16

// sliceImpl is ola's in-memory implementation of Slice
type sliceImpl struct {
	id      string
	maxRows int
	rows    [][]interface{}
	schema  ola.Schema
}

// CreateSlice creates a new, empty Slice which will hold at most maxRows Rows. A
// maxRows of 0 produces an unbounded Slice.
func CreateSlice(maxRows int, schema ola.Schema) ola.BuildableSlice {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Slice: %v", err)
	}
	capacity := defaultCapacity
	if maxRows > 0 && maxRows < capacity {
		capacity = maxRows
	}
	return &sliceImpl{
		id:      id.String(),
		maxRows: maxRows,
		rows:    make([][]interface{}, 0, capacity),
		schema:  schema,
	}
}

// FromRows is a convenience factory which builds an unbounded Slice from named row values
func FromRows(schema ola.Schema, rows ...map[string]interface{}) (ola.Slice, error) {
	s := CreateSlice(0, schema)
	for _, r := range rows {
		if err := s.AppendRow(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ID retrieves the ID of this Slice
func (s *sliceImpl) ID() string {
	return s.id
}

// Schema returns the Schema shared by all Rows in this Slice
func (s *sliceImpl) Schema() ola.Schema {
	return s.schema
}

// GetMaxRows retrieves the maximum number of rows in this Slice
func (s *sliceImpl) GetMaxRows() int {
	return s.maxRows
}

// GetNumRows retrieves the number of rows in this Slice
func (s *sliceImpl) GetNumRows() int {
	return len(s.rows)
}

// GetRow retrieves a specific row from this Slice
func (s *sliceImpl) GetRow(rowNum int) ola.Row {
	return &rowImpl{values: s.rows[rowNum], schema: s.schema}
}

// ForEachRow iterates over the Rows in this Slice, in order
func (s *sliceImpl) ForEachRow(fn func(row ola.Row) error) error {
	row := &rowImpl{schema: s.schema}
	for _, values := range s.rows {
		row.values = values
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// AppendRow coerces named values according to the Schema and appends them as a new Row
func (s *sliceImpl) AppendRow(values map[string]interface{}) error {
	if s.isFull() {
		return errors.SliceFullError{}
	}
	row := make([]interface{}, s.schema.NumColumns())
	err := s.schema.ForEachColumn(func(name string, col ola.Column) error {
		v, err := coerce(name, col.Type(), values[name])
		if err != nil {
			return err
		}
		row[col.Index()] = v
		return nil
	})
	if err != nil {
		return err
	}
	s.rows = append(s.rows, row)
	return nil
}

// AppendValues coerces values, in Schema column order, and appends them as a new Row
func (s *sliceImpl) AppendValues(values []interface{}) error {
	if s.isFull() {
		return errors.SliceFullError{}
	}
	if len(values) != s.schema.NumColumns() {
		return fmt.Errorf("Row width %d is not compatible with Schema width %d", len(values), s.schema.NumColumns())
	}
	row := make([]interface{}, len(values))
	names := s.schema.ColumnNames()
	types := s.schema.ColumnTypes()
	for i, v := range values {
		cv, err := coerce(names[i], types[i], v)
		if err != nil {
			return err
		}
		row[i] = cv
	}
	s.rows = append(s.rows, row)
	return nil
}

func (s *sliceImpl) isFull() bool {
	return s.maxRows > 0 && len(s.rows) >= s.maxRows
}

// coerce converts a value to the canonical representation of a column type.
// NaN is treated as a missing value.
func coerce(colName string, colType ola.ColumnType, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return nil, nil
	}
	cv, err := colType.Coerce(v)
	if err != nil {
		return nil, errors.ValueTypeError{Name: colName, Value: v, Expected: colType.Name()}
	}
	return cv, nil
}
