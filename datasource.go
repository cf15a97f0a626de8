package ola

import "context"

// A DataSource is a dataset which can be divided into an ordered sequence of Slices,
// any number of times
type DataSource interface {
	Open(ctx context.Context) (SliceIterator, error) // Open returns a new SliceIterator over this DataSource, from its first row
	CountRows(ctx context.Context) (int64, error)    // CountRows returns the total number of rows in this DataSource, as needed by scale-corrected Aggregators
}
