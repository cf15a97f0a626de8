package dsv

import (
	"strings"
	"testing"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

const taxiData = `# trips
hack,passengers,distance,paid
a1,1,2.5,true
b2,null,0.7,false
a1,3,,true
c3,2,12,
`

func TestDSVParser(t *testing.T) {
	sch, err := schema.ParseSchema("hack:varstring,passengers:int64,distance:float64,paid:bool")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader(taxiData), sch, &ParserConf{
		SliceSize:   3,
		HeaderLines: 1,
		Comment:     '#',
		NilValue:    "null",
	})
	require.Nil(t, err)

	s, err := it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 3, s.GetNumRows())
	first := s.GetRow(0)
	hack, err := first.GetString("hack")
	require.Nil(t, err)
	require.Equal(t, "a1", hack)
	passengers, err := first.GetInt64("passengers")
	require.Nil(t, err)
	require.Equal(t, int64(1), passengers)
	require.True(t, s.GetRow(1).IsNil("passengers"))
	require.True(t, s.GetRow(2).IsNil("distance"))

	s, err = it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 1, s.GetNumRows())
	distance, err := s.GetRow(0).GetFloat64("distance")
	require.Nil(t, err)
	require.Equal(t, 12.0, distance)
	require.True(t, s.GetRow(0).IsNil("paid"))

	_, err = it.NextSlice()
	require.True(t, datasource.IsEnd(err))
	require.False(t, it.HasNextSlice())
}

func TestDSVParserTabs(t *testing.T) {
	sch, err := schema.ParseSchema("k:varstring,v:float64")
	require.Nil(t, err)
	total, err := countRows(t, "x\t1\ny\t2\n", sch, &ParserConf{Delimiter: '\t'})
	require.Nil(t, err)
	require.Equal(t, int64(2), total)
}

func TestDSVParserBadValue(t *testing.T) {
	sch, err := schema.ParseSchema("k:varstring,v:float64")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader("x,abc\n"), sch, nil)
	require.Nil(t, err)
	_, err = it.NextSlice()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Column v")
}

func TestDSVParserWrongWidth(t *testing.T) {
	sch, err := schema.ParseSchema("k:varstring,v:float64")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader("x,1,2\n"), sch, nil)
	require.Nil(t, err)
	_, err = it.NextSlice()
	require.NotNil(t, err)
}

func countRows(t *testing.T, data string, sch ola.Schema, conf *ParserConf) (int64, error) {
	it, err := CreateIterator(strings.NewReader(data), sch, conf)
	require.Nil(t, err)
	return datasource.CountRows(it)
}
