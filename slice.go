package ola

// A Slice is an ordered batch of Rows, delivered to an Aggregator
// in one ProcessSlice call. Slices of one logical dataset are
// non-overlapping and ordered, and may be empty.
type Slice interface {
	ID() string                              // ID retrieves the ID of this Slice
	Schema() Schema                          // Schema returns the Schema shared by all Rows in this Slice
	GetNumRows() int                         // GetNumRows returns the number of Rows in this Slice
	GetRow(rowNum int) Row                   // GetRow retrieves a specific Row from this Slice
	ForEachRow(fn func(row Row) error) error // ForEachRow iterates over the Rows in this Slice, in order, stopping at the first error
}

// A BuildableSlice can be built. Used in the implementation of DataSources
type BuildableSlice interface {
	Slice
	GetMaxRows() int                               // GetMaxRows retrieves the maximum number of Rows in this Slice, or 0 if it is unbounded
	AppendRow(values map[string]interface{}) error // AppendRow coerces named values according to the Schema and appends them as a Row. Absent columns are nil.
	AppendValues(values []interface{}) error       // AppendValues coerces values, given in Schema column order, and appends them as a Row
}

// A SliceIterator produces the Slices of a dataset, in dataset order
type SliceIterator interface {
	HasNextSlice() bool        // HasNextSlice returns true iff this SliceIterator can produce another Slice
	NextSlice() (Slice, error) // NextSlice returns the next Slice if one is available, or an error
	OnEnd(onEnd func())        // OnEnd registers a listener which fires when this iterator runs out of Slices
	Close() error              // Close releases any resources held by this iterator, such as open files, even if Slices remain
}
