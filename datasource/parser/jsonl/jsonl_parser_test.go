package jsonl

import (
	"strings"
	"testing"

	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

const people = `{"name": "Sean", "meta": { "index": 1, "first": "Sean", "last": "McIntyre"}, "score": 7.5}
{"name": "Chris", "meta": { "index": 3, "first": "Chris", "last": "Dickson"}, "score": null}

// a comment
{"name": "Phil", "meta": { "index": 2, "first": "Phil", "last": "Laliberté"}, "score": "4"}
{"name": "Fahd", "meta": { "index": 4, "first": "Fahd"}, "active": true}
`

func TestJSONLParser(t *testing.T) {
	sch, err := schema.ParseSchema("name:varstring,meta.index:int64,meta.last:varstring,score:float64,active:bool")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader(people), sch, &ParserConf{SliceSize: 3, Comment: '/'})
	require.Nil(t, err)

	s, err := it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 3, s.GetNumRows())
	idx, err := s.GetRow(0).GetInt64("meta.index")
	require.Nil(t, err)
	require.Equal(t, int64(1), idx)
	score, err := s.GetRow(0).GetFloat64("score")
	require.Nil(t, err)
	require.Equal(t, 7.5, score)
	require.True(t, s.GetRow(1).IsNil("score"))
	// numeric strings are parsed according to the column type
	score, err = s.GetRow(2).GetFloat64("score")
	require.Nil(t, err)
	require.Equal(t, 4.0, score)

	s, err = it.NextSlice()
	require.Nil(t, err)
	require.Equal(t, 1, s.GetNumRows())
	require.True(t, s.GetRow(0).IsNil("meta.last"))
	active, err := s.GetRow(0).GetBool("active")
	require.Nil(t, err)
	require.True(t, active)

	_, err = it.NextSlice()
	require.True(t, datasource.IsEnd(err))
}

func TestJSONLParserNestedString(t *testing.T) {
	sch, err := schema.ParseSchema("meta:varstring")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader(`{"meta": {"a": 1}}`), sch, nil)
	require.Nil(t, err)
	s, err := it.NextSlice()
	require.Nil(t, err)
	meta, err := s.GetRow(0).GetString("meta")
	require.Nil(t, err)
	require.Equal(t, `{"a": 1}`, meta)
}

func TestJSONLParserErrors(t *testing.T) {
	sch, err := schema.ParseSchema("n:int64")
	require.Nil(t, err)
	for _, data := range []string{`{"n": 1.5}`, `{"n": [1]}`, `[1, 2]`} {
		it, err := CreateIterator(strings.NewReader(data), sch, nil)
		require.Nil(t, err)
		_, err = it.NextSlice()
		require.NotNil(t, err, data)
	}
}

func TestJSONLCountRows(t *testing.T) {
	sch, err := schema.ParseSchema("name:varstring")
	require.Nil(t, err)
	it, err := CreateIterator(strings.NewReader(people), sch, &ParserConf{SliceSize: 2, Comment: '/'})
	require.Nil(t, err)
	total, err := datasource.CountRows(it)
	require.Nil(t, err)
	require.Equal(t, int64(4), total)
}
