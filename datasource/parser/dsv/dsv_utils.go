package dsv

import (
	"fmt"

	"github.com/go-sif/ola"
)

// Parses a slice of strings into row values, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []ola.ColumnType, rowStrings []string) ([]interface{}, error) {
	values := make([]interface{}, len(rowStrings))
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		v, err := colTypes[i].Parse(colVal)
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as %s. Was: %#v", names[i], colTypes[i].Name(), colVal)
		}
		values[i] = v
	}
	return values, nil
}
