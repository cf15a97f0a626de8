package datasource

import (
	goerrors "errors"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/errors"
)

// CountRows drains a SliceIterator and returns the number of rows it produced. It
// is intended for computing the total row count of a dataset ahead of a scaled
// aggregation, using a separate iterator over the same data.
func CountRows(it ola.SliceIterator) (int64, error) {
	var total int64
	for it.HasNextSlice() {
		s, err := it.NextSlice()
		if IsEnd(err) {
			break
		} else if err != nil {
			return total, err
		}
		total += int64(s.GetNumRows())
	}
	return total, nil
}

// IsEnd returns true iff err signals that a SliceIterator has no more Slices
func IsEnd(err error) bool {
	return goerrors.Is(err, errors.NoMoreSlicesError{})
}
