package ola

// Row is a representation of a single row of scalar data
// (a member of a Slice), along with a reference to the
// Schema for that row. Rows are immutable once delivered
// to an Aggregator. Columns which are absent from the
// underlying data are nil.
type Row interface {
	Schema() Schema                                     // Schema returns the Schema for this Row
	ToString() string                                   // ToString returns a string representation of this Row
	IsNil(colName string) bool                          // IsNil returns true iff the given column value is nil in this Row. If the column does not exist, this function returns true.
	Get(colName string) (col interface{}, err error)    // Get returns the value of any column as an interface{}, if it exists. Nil values are returned as nil, without error.
	GetFloat64(colName string) (col float64, err error) // GetFloat64 retrieves a numeric column value as a float64, returning a NilValueError for nil values
	GetInt64(colName string) (col int64, err error)     // GetInt64 retrieves an integer column value, returning a NilValueError for nil values
	GetBool(colName string) (col bool, err error)       // GetBool retrieves a boolean column value, returning a NilValueError for nil values
	GetString(colName string) (col string, err error)   // GetString returns the plain string form of any column value. Nil values are rendered as "null".
}
