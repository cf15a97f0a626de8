package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/datasource/parser/jsonl"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

func createRows(n int) []map[string]interface{} {
	rows := make([]map[string]interface{}, n)
	for i := range rows {
		rows[i] = map[string]interface{}{"id": i, "group": fmt.Sprintf("g%d", i%3)}
	}
	return rows
}

func collectIDs(t *testing.T, it ola.SliceIterator) ([]int64, []int) {
	ids := []int64{}
	sizes := []int{}
	for it.HasNextSlice() {
		s, err := it.NextSlice()
		if datasource.IsEnd(err) {
			break
		}
		require.Nil(t, err)
		sizes = append(sizes, s.GetNumRows())
		require.Nil(t, s.ForEachRow(func(row ola.Row) error {
			id, err := row.GetInt64("id")
			ids = append(ids, id)
			return err
		}))
	}
	return ids, sizes
}

func TestMemoryDataSourceInOrder(t *testing.T) {
	sch, err := schema.ParseSchema("id:int64,group:varstring")
	require.Nil(t, err)
	source := CreateDataSource(createRows(10), sch, &Conf{SliceSize: 4})
	require.Equal(t, int64(10), source.NumRows())
	total, err := source.CountRows(context.Background())
	require.Nil(t, err)
	require.Equal(t, int64(10), total)
	ids, sizes := collectIDs(t, source.Iterate())
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ids)
	require.Equal(t, []int{4, 4, 2}, sizes)
}

func TestMemoryDataSourceShuffle(t *testing.T) {
	sch, err := schema.ParseSchema("id:int64,group:varstring")
	require.Nil(t, err)
	source := CreateDataSource(createRows(50), sch, &Conf{SliceSize: 7, Shuffle: true, Seed: 42})
	first, _ := collectIDs(t, source.Iterate())
	second, _ := collectIDs(t, source.Iterate())
	require.Equal(t, first, second)
	require.Len(t, first, 50)
	require.NotEqual(t, first[:10], []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	seen := map[int64]bool{}
	for _, id := range first {
		seen[id] = true
	}
	require.Len(t, seen, 50)
}

func TestMemoryDataSourceEmpty(t *testing.T) {
	sch, err := schema.ParseSchema("id:int64")
	require.Nil(t, err)
	it := CreateDataSource(nil, sch, nil).Iterate()
	_, err = it.NextSlice()
	require.True(t, datasource.IsEnd(err))
	require.False(t, it.HasNextSlice())
}

func TestParseBuffers(t *testing.T) {
	sch, err := schema.ParseSchema("id:int64")
	require.Nil(t, err)
	data := [][]byte{
		[]byte("{\"id\": 1}\n{\"id\": 2}"),
		[]byte("{\"id\": 3}\n{\"id\": 4}\n"),
	}
	ids, sizes := collectIDs(t, Parse(data, jsonl.CreateParser(&jsonl.ParserConf{SliceSize: 3}), sch))
	require.Equal(t, []int64{1, 2, 3, 4}, ids)
	require.Equal(t, []int{3, 1}, sizes)
}
