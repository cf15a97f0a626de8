package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("olafake", "")
	require.Nil(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabaseDataSource(t *testing.T) {
	testDriver.addTable("rentals", []string{"store", "amount", "note", "rented_at"}, [][]driver.Value{
		{[]byte("north"), 4.99, "a", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{[]byte("south"), []byte("2.50"), nil, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{[]byte("north"), int64(3), "c", nil},
	})
	sch, err := schema.ParseSchema("amount:float64,store:varstring,rented_at:varstring")
	require.Nil(t, err)
	source, err := CreateDataSource(openTestDB(t), "rentals", nil, sch, &Conf{SliceSize: 2})
	require.Nil(t, err)

	total, err := source.CountRows(context.Background())
	require.Nil(t, err)
	require.Equal(t, int64(3), total)

	it, err := source.Open(context.Background())
	require.Nil(t, err)
	amounts := []float64{}
	stores := []string{}
	sizes := []int{}
	for it.HasNextSlice() {
		s, err := it.NextSlice()
		if datasource.IsEnd(err) {
			break
		}
		require.Nil(t, err)
		sizes = append(sizes, s.GetNumRows())
		require.Nil(t, s.ForEachRow(func(row ola.Row) error {
			amount, err := row.GetFloat64("amount")
			if err != nil {
				return err
			}
			store, err := row.GetString("store")
			amounts = append(amounts, amount)
			stores = append(stores, store)
			return err
		}))
	}
	require.Equal(t, []int{2, 1}, sizes)
	require.Equal(t, []float64{4.99, 2.5, 3}, amounts)
	require.Equal(t, []string{"north", "south", "north"}, stores)
}

func TestDatabaseDataSourceTimes(t *testing.T) {
	testDriver.addTable("times", []string{"at"}, [][]driver.Value{
		{time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)},
	})
	sch, err := schema.ParseSchema("at:varstring")
	require.Nil(t, err)
	source, err := CreateDataSource(openTestDB(t), "times", nil, sch, nil)
	require.Nil(t, err)
	it, err := source.Open(context.Background())
	require.Nil(t, err)
	s, err := it.NextSlice()
	require.Nil(t, err)
	at, err := s.GetRow(0).GetString("at")
	require.Nil(t, err)
	require.Equal(t, "2020-01-01T12:00:00Z", at)
}

func TestDatabaseDataSourceMissingColumn(t *testing.T) {
	testDriver.addTable("narrow", []string{"a"}, [][]driver.Value{{int64(1)}})
	sch, err := schema.ParseSchema("a:int64,b:int64")
	require.Nil(t, err)
	source, err := CreateDataSource(openTestDB(t), "narrow", nil, sch, nil)
	require.Nil(t, err)
	_, err = source.Open(context.Background())
	require.NotNil(t, err)
}

func TestDatabaseDataSourceBadValue(t *testing.T) {
	testDriver.addTable("bad", []string{"a"}, [][]driver.Value{{[]byte("abc")}})
	sch, err := schema.ParseSchema("a:float64")
	require.Nil(t, err)
	source, err := CreateDataSource(openTestDB(t), "bad", nil, sch, nil)
	require.Nil(t, err)
	it, err := source.Open(context.Background())
	require.Nil(t, err)
	_, err = it.NextSlice()
	require.NotNil(t, err)
}

func TestDatabaseDataSourceCloseReleasesRows(t *testing.T) {
	testDriver.addTable("long", []string{"a"}, [][]driver.Value{{int64(1)}, {int64(2)}, {int64(3)}})
	sch, err := schema.ParseSchema("a:int64")
	require.Nil(t, err)
	source, err := CreateDataSource(openTestDB(t), "long", nil, sch, &Conf{SliceSize: 1})
	require.Nil(t, err)
	it, err := source.Open(context.Background())
	require.Nil(t, err)
	_, err = it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 0, testDriver.numClosed("long"))
	require.Nil(t, it.Close())
	require.Equal(t, 1, testDriver.numClosed("long"))
	_, err = it.NextSlice()
	require.True(t, datasource.IsEnd(err))
}

func TestDatabaseDataSourceRequiresQuery(t *testing.T) {
	sch, err := schema.ParseSchema("a:float64")
	require.Nil(t, err)
	_, err = CreateDataSource(openTestDB(t), " ", nil, sch, nil)
	require.NotNil(t, err)
}
