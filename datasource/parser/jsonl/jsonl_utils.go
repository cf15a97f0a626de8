package jsonl

import (
	"fmt"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/columntype"
	"github.com/tidwall/gjson"
)

func parseValue(res gjson.Result, colName string, colType ola.ColumnType) (interface{}, error) {
	switch res.Type {
	case gjson.Null:
		return nil, nil
	case gjson.String:
		v, err := colType.Parse(res.Str)
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as %s. Was: %#v", colName, colType.Name(), res.Str)
		}
		return v, nil
	case gjson.JSON:
		// nested objects and arrays are only representable as strings
		if _, ok := colType.(*columntype.VarStringColumnType); ok {
			return res.Raw, nil
		}
		return nil, fmt.Errorf("Column %s was not a %s. Was: %s", colName, colType.Name(), res.Raw)
	default:
		// numbers and booleans, in their literal form
		v, err := colType.Parse(res.Raw)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not a %s. Was: %s", colName, colType.Name(), res.Raw)
		}
		return v, nil
	}
}

// parseJSONRow extracts the value of every Schema column from a parsed JSON object. Missing values are nil.
func parseJSONRow(names []string, colTypes []ola.ColumnType, rowJSON gjson.Result) ([]interface{}, error) {
	if !rowJSON.IsObject() {
		return nil, fmt.Errorf("Row was not a JSON object: %s", rowJSON.Raw)
	}
	values := make([]interface{}, len(names))
	for i, name := range names {
		res := rowJSON.Get(name)
		if !res.Exists() {
			continue
		}
		v, err := parseValue(res, name, colTypes[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
