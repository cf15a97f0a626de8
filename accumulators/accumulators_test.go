package accumulators

import (
	"math"
	"testing"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/schema"
	"github.com/go-sif/ola/slice"
	"github.com/stretchr/testify/require"
)

func createTestSlice(t *testing.T, values ...interface{}) ola.Slice {
	s, err := schema.ParseSchema("label:varstring,value:float64")
	require.Nil(t, err)
	rows := make([]map[string]interface{}, len(values))
	for i, v := range values {
		rows[i] = map[string]interface{}{"label": "x", "value": v}
	}
	sl, err := slice.FromRows(s, rows...)
	require.Nil(t, err)
	return sl
}

func accumulateAll(t *testing.T, acc ola.Accumulator, s ola.Slice) {
	require.Nil(t, s.ForEachRow(acc.Accumulate))
}

func TestSumSkipsNil(t *testing.T) {
	acc := Adder("value")()
	accumulateAll(t, acc, createTestSlice(t, 1, nil, 2.5))
	require.Equal(t, 3.5, acc.(*Sum).GetSum())
}

func TestCountNonNil(t *testing.T) {
	acc := NonNilCounter("value")()
	accumulateAll(t, acc, createTestSlice(t, 1, nil, 2))
	require.Equal(t, uint64(2), acc.(*Count).GetCount())

	rows := Counter()
	accumulateAll(t, rows, createTestSlice(t, 1, nil, 2))
	require.Equal(t, uint64(3), rows.(*Count).GetCount())
}

func TestMean(t *testing.T) {
	acc := Averager("value")()
	require.True(t, math.IsNaN(acc.(*Mean).GetMean()))
	accumulateAll(t, acc, createTestSlice(t, 1, 2, nil, 3))
	require.Equal(t, 2.0, acc.(*Mean).GetMean())
}

func TestMerge(t *testing.T) {
	a := Averager("value")()
	b := Averager("value")()
	accumulateAll(t, a, createTestSlice(t, 1, 2, 3))
	accumulateAll(t, b, createTestSlice(t, 4, 5, 6))
	require.Nil(t, a.Merge(b))
	require.Equal(t, 3.5, a.(*Mean).GetMean())
	require.Equal(t, uint64(6), a.(*Mean).GetCount())
	require.Equal(t, 21.0, a.(*Mean).GetSum())

	require.NotNil(t, a.Merge(Counter()))
	require.NotNil(t, Counter().Merge(a))
	require.NotNil(t, Adder("value")().Merge(a))
}

func TestSumOfStringColumnFails(t *testing.T) {
	acc := Adder("label")()
	err := createTestSlice(t, 1).ForEachRow(acc.Accumulate)
	require.NotNil(t, err)
}
