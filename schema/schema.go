package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/columntype"
	"github.com/go-sif/ola/errors"
)

// column describes the position and type of a field in a Row.
type column struct {
	idx     int
	colType ola.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() ola.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() ola.ColumnType {
	return c.colType
}

// Schema is an ordered mapping from column names to
// ColumnTypes. It allows one to obtain offsets by name,
// define new columns, and compare Schemas.
type schema struct {
	schema map[string]ola.Column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() ola.Schema {
	return &schema{
		schema: make(map[string]ola.Column),
		names:  []string{},
	}
}

// ParseSchema produces a Schema from a textual definition of the form
// "name:type,name:type", where each type is a name accepted by columntype.ByName
func ParseSchema(def string) (ola.Schema, error) {
	s := CreateSchema()
	for _, field := range strings.Split(def, ",") {
		field = strings.TrimSpace(field)
		if len(field) == 0 {
			continue
		}
		sep := strings.LastIndex(field, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("Column definition %q must be of the form name:type", field)
		}
		colType, err := columntype.ByName(field[sep+1:])
		if err != nil {
			return nil, err
		}
		if _, err = s.CreateColumn(strings.TrimSpace(field[:sep]), colType); err != nil {
			return nil, err
		}
	}
	if s.NumColumns() == 0 {
		return nil, fmt.Errorf("Schema definition %q contains no columns", def)
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema ola.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, offset ola.Column) error {
		otherOffset, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if offset.Index() != otherOffset.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(offset.Type()) != reflect.TypeOf(otherOffset.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() ola.Schema {
	newSchema := make(map[string]ola.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &schema{schema: newSchema, names: names}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetOffset returns the position and type of a particular column within a row.
func (s *schema) GetOffset(colName string) (offset ola.Column, err error) {
	offset, ok := s.schema[colName]
	if !ok {
		err = errors.MissingColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetOffset(colName)
	return err == nil
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string, columnType ola.ColumnType) (newSchema ola.Schema, err error) {
	_, containsOffset := s.schema[colName]
	if containsOffset {
		err = fmt.Errorf("Schema already contains column with name %s", colName)
	} else if len(colName) == 0 {
		err = fmt.Errorf("Column names cannot be empty")
	} else {
		s.schema[colName] = &column{len(s.names), columnType}
		s.names = append(s.names, colName)
		newSchema = s
	}
	return
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []ola.ColumnType {
	types := make([]ola.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in order of column index.
func (s *schema) ForEachColumn(fn func(name string, col ola.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}
