package slice

import (
	"math"
	"testing"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/errors"
	"github.com/go-sif/ola/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) ola.Schema {
	s, err := schema.ParseSchema("name:varstring,age:int64,score:float64,active:bool")
	require.Nil(t, err)
	return s
}

func TestAppendRowCoercesValues(t *testing.T) {
	s := CreateSlice(0, createTestSchema(t))
	err := s.AppendRow(map[string]interface{}{"name": "Sean", "age": 31, "score": 7, "active": true})
	require.Nil(t, err)
	require.Equal(t, 1, s.GetNumRows())

	row := s.GetRow(0)
	age, err := row.GetInt64("age")
	require.Nil(t, err)
	require.Equal(t, int64(31), age)
	score, err := row.GetFloat64("score")
	require.Nil(t, err)
	require.Equal(t, float64(7), score)
	active, err := row.GetBool("active")
	require.Nil(t, err)
	require.True(t, active)
	name, err := row.GetString("name")
	require.Nil(t, err)
	require.Equal(t, "Sean", name)
	require.NotEmpty(t, s.ID())
}

func TestAbsentAndNaNValuesAreNil(t *testing.T) {
	s := CreateSlice(0, createTestSchema(t))
	require.Nil(t, s.AppendRow(map[string]interface{}{"name": "Chris", "score": math.NaN()}))
	row := s.GetRow(0)
	require.True(t, row.IsNil("age"))
	require.True(t, row.IsNil("score"))
	require.True(t, row.IsNil("no_such_column"))
	require.False(t, row.IsNil("name"))

	_, err := row.GetFloat64("score")
	require.Equal(t, errors.NilValueError{Name: "score"}, err)
	str, err := row.GetString("age")
	require.Nil(t, err)
	require.Equal(t, "null", str)
	v, err := row.Get("age")
	require.Nil(t, err)
	require.Nil(t, v)
	_, err = row.Get("no_such_column")
	require.Equal(t, errors.MissingColumnError{Name: "no_such_column"}, err)
}

func TestAppendRowTypeError(t *testing.T) {
	s := CreateSlice(0, createTestSchema(t))
	err := s.AppendRow(map[string]interface{}{"age": "old"})
	require.Equal(t, errors.ValueTypeError{Name: "age", Value: "old", Expected: "int64"}, err)
	require.Equal(t, 0, s.GetNumRows())
}

func TestSliceFull(t *testing.T) {
	s := CreateSlice(1, createTestSchema(t))
	require.Nil(t, s.AppendValues([]interface{}{"Phil", int64(2), 1.5, false}))
	err := s.AppendValues([]interface{}{"Fahd", int64(4), 2.5, true})
	require.Equal(t, errors.SliceFullError{}, err)
	require.Equal(t, 1, s.GetMaxRows())
}

func TestAppendValuesWidth(t *testing.T) {
	s := CreateSlice(0, createTestSchema(t))
	require.NotNil(t, s.AppendValues([]interface{}{"Phil"}))
}

func TestForEachRowInOrder(t *testing.T) {
	s, err := FromRows(createTestSchema(t),
		map[string]interface{}{"name": "a"},
		map[string]interface{}{"name": "b"},
		map[string]interface{}{"name": "c"},
	)
	require.Nil(t, err)
	names := []string{}
	err = s.ForEachRow(func(row ola.Row) error {
		name, err := row.GetString("name")
		names = append(names, name)
		return err
	})
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRowToString(t *testing.T) {
	s, err := FromRows(createTestSchema(t), map[string]interface{}{"name": "a", "age": 3})
	require.Nil(t, err)
	require.Equal(t, "{\"name\": a, \"age\": 3, \"score\": nil, \"active\": nil}", s.GetRow(0).ToString())
}
