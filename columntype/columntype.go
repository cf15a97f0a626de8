package columntype

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-sif/ola"
)

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns the name of this type
func (b *BoolColumnType) Name() string {
	return "bool"
}

// IsNumeric returns false, as booleans cannot be summed
func (b *BoolColumnType) IsNumeric() bool {
	return false
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// Parse parses a BoolColumnType value from a string
func (b *BoolColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseBool(s)
}

// Coerce converts a Go value to a BoolColumnType value
func (b *BoolColumnType) Coerce(v interface{}) (interface{}, error) {
	bval, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%#v is not a boolean", v)
	}
	return bval, nil
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name returns the name of this type
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// IsNumeric returns true
func (b *Int64ColumnType) IsNumeric() bool {
	return true
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Parse parses a Int64ColumnType value from a string
func (b *Int64ColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Coerce converts a Go value to a Int64ColumnType value. Floating point
// values are accepted only if they are integral, since JSON numbers arrive as float64.
func (b *Int64ColumnType) Coerce(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return nil, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	case float32:
		return b.Coerce(float64(n))
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return nil, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	default:
		return nil, fmt.Errorf("%#v is not an integer", v)
	}
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns the name of this type
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// IsNumeric returns true
func (b *Float64ColumnType) IsNumeric() bool {
	return true
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// Parse parses a Float64ColumnType value from a string
func (b *Float64ColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseFloat(s, 64)
}

// Coerce converts a Go value to a Float64ColumnType value
func (b *Float64ColumnType) Coerce(v interface{}) (interface{}, error) {
	f, ok := ToFloat64(v)
	if !ok {
		return nil, fmt.Errorf("%#v is not a number", v)
	}
	return f, nil
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Name returns the name of this type
func (b *VarStringColumnType) Name() string {
	return "varstring"
}

// IsNumeric returns false, as strings cannot be summed
func (b *VarStringColumnType) IsNumeric() bool {
	return false
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// Parse returns the string unchanged
func (b *VarStringColumnType) Parse(s string) (interface{}, error) {
	return s, nil
}

// Coerce converts a Go value to a VarStringColumnType value
func (b *VarStringColumnType) Coerce(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return nil, fmt.Errorf("%#v is not a string", v)
	}
}

// ToFloat64 converts any Go numeric value to a float64
func ToFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// ByName returns the ColumnType with the given name, as used in textual schema definitions
func ByName(name string) (ola.ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool", "boolean":
		return &BoolColumnType{}, nil
	case "int64", "int", "integer":
		return &Int64ColumnType{}, nil
	case "float64", "float", "double", "number":
		return &Float64ColumnType{}, nil
	case "varstring", "string", "text":
		return &VarStringColumnType{}, nil
	default:
		return nil, fmt.Errorf("Unknown column type %s", name)
	}
}
