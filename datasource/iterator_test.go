package datasource

import (
	"fmt"
	"io"
	"testing"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

func countingReader(n int) RowReader {
	i := 0
	return func(s ola.BuildableSlice) error {
		if i >= n {
			return io.EOF
		}
		i++
		return s.AppendValues([]interface{}{int64(i)})
	}
}

func TestSliceIterator(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	ended := 0
	it := CreateSliceIterator(4, sch, countingReader(10))
	it.OnEnd(func() { ended++ })
	sizes := []int{}
	for it.HasNextSlice() {
		s, err := it.NextSlice()
		if IsEnd(err) {
			break
		}
		require.Nil(t, err)
		sizes = append(sizes, s.GetNumRows())
	}
	require.Equal(t, []int{4, 4, 2}, sizes)
	require.Equal(t, 1, ended)
	_, err = it.NextSlice()
	require.True(t, IsEnd(err))

	// listeners registered after the end fire immediately
	it.OnEnd(func() { ended++ })
	require.Equal(t, 2, ended)
}

func TestSliceIteratorNoTrailingEmptySlice(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	it := CreateSliceIterator(5, sch, countingReader(10))
	numSlices := 0
	for it.HasNextSlice() {
		_, err := it.NextSlice()
		if IsEnd(err) {
			break
		}
		require.Nil(t, err)
		numSlices++
	}
	require.Equal(t, 2, numSlices)
}

func TestSliceIteratorError(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	it := CreateSliceIterator(5, sch, func(s ola.BuildableSlice) error {
		return fmt.Errorf("bad row")
	})
	_, err = it.NextSlice()
	require.NotNil(t, err)
	require.False(t, IsEnd(err))
}

func TestCountRows(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	total, err := CountRows(CreateSliceIterator(3, sch, countingReader(11)))
	require.Nil(t, err)
	require.Equal(t, int64(11), total)

	total, err = CountRows(CreateSliceIterator(3, sch, countingReader(0)))
	require.Nil(t, err)
	require.Equal(t, int64(0), total)
}

func TestSliceIteratorCloseEarly(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	closes := 0
	ended := 0
	it := CreateClosingSliceIterator(2, sch, countingReader(10), func() error {
		closes++
		return nil
	})
	it.OnEnd(func() { ended++ })
	_, err = it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 0, closes)

	require.Nil(t, it.Close())
	require.Equal(t, 1, closes)
	require.Equal(t, 1, ended)
	require.False(t, it.HasNextSlice())
	_, err = it.NextSlice()
	require.True(t, IsEnd(err))

	require.Nil(t, it.Close())
	require.Equal(t, 1, closes)
}

func TestSliceIteratorClosesAtEnd(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	closes := 0
	it := CreateClosingSliceIterator(4, sch, countingReader(3), func() error {
		closes++
		return fmt.Errorf("close failed")
	})
	total, err := CountRows(it)
	require.Nil(t, err)
	require.Equal(t, int64(3), total)
	require.Equal(t, 1, closes)
	// the error from closing at the end is reported by Close
	require.NotNil(t, it.Close())
	require.Equal(t, 1, closes)
}
