package aggregators

import (
	"fmt"
	"math"

	"github.com/go-sif/ola"
)

// ColumnKey returns a GroupKeyExtractor which groups rows by the value of a column.
// Nil and NaN values share the nil (null) group.
func ColumnKey(colName string) ola.GroupKeyExtractor {
	return func(row ola.Row) (interface{}, error) {
		v, err := row.Get(colName)
		if err != nil {
			return nil, err
		}
		return normalizeKey(v), nil
	}
}

func normalizeKey(v interface{}) interface{} {
	switch k := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(k) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(k)) {
			return nil
		}
	case []byte:
		return string(k)
	}
	if !isComparable(v) {
		return fmt.Sprintf("%v", v)
	}
	return v
}

// groupTable maps group keys to Accumulators, remembering the
// order in which each key was first observed
type groupTable struct {
	factory ola.AccumulatorFactory
	keys    []interface{}
	groups  map[interface{}]ola.Accumulator
}

func createGroupTable(factory ola.AccumulatorFactory) *groupTable {
	return &groupTable{
		factory: factory,
		keys:    []interface{}{},
		groups:  make(map[interface{}]ola.Accumulator),
	}
}

// get returns the Accumulator for a key, creating it on first sight
func (g *groupTable) get(key interface{}) ola.Accumulator {
	acc, ok := g.groups[key]
	if !ok {
		acc = g.factory()
		g.groups[key] = acc
		g.keys = append(g.keys, key)
	}
	return acc
}

// accumulateSlice partitions a Slice by group key into a new, slice-local groupTable.
// Rows for which keep returns false are skipped; a nil keep retains every row.
func (g *groupTable) accumulateSlice(s ola.Slice, keyFn ola.GroupKeyExtractor, keep func(ola.Row) (bool, error)) (*groupTable, error) {
	local := createGroupTable(g.factory)
	err := s.ForEachRow(func(row ola.Row) error {
		if keep != nil {
			ok, err := keep(row)
			if err != nil || !ok {
				return err
			}
		}
		key, err := keyFn(row)
		if err != nil {
			return err
		}
		return local.get(key).Accumulate(row)
	})
	if err != nil {
		return nil, err
	}
	return local, nil
}

// merge folds a slice-local groupTable into this one. Keys new to this table are
// appended in the order of their first appearance within the Slice.
func (g *groupTable) merge(local *groupTable) error {
	for _, key := range local.keys {
		if err := g.get(key).Merge(local.groups[key]); err != nil {
			return err
		}
	}
	return nil
}

// estimate produces an Estimate over every group ever seen, in first-seen order
func (g *groupTable) estimate(value func(acc ola.Accumulator) float64) ola.Estimate {
	labels := make([]interface{}, len(g.keys))
	values := make([]float64, len(g.keys))
	for i, key := range g.keys {
		labels[i] = key
		values[i] = value(g.groups[key])
	}
	return ola.Estimate{Labels: labels, Values: values}
}

// numGroups returns the number of distinct group keys seen so far
func (g *groupTable) numGroups() int {
	return len(g.keys)
}
