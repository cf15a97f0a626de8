package aggregators

import (
	"fmt"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/accumulators"
)

// scaledGroups holds the state shared by the scale-corrected grouped Aggregators:
// raw per-group statistics and the number of rows seen so far
type scaledGroups struct {
	*aggregator
	keyFn         ola.GroupKeyExtractor
	groups        *groupTable
	totalRowCount int64
	rowsSeen      int64
	warned        bool
}

func createScaledGroups(name string, sink ola.Sink, conf *Conf, factory func(colName string) ola.AccumulatorFactory, numeric bool) (*scaledGroups, error) {
	base, err := createAggregator(name, sink, conf,
		columnRole{role: "group-by", name: conf.GroupByColumn},
		columnRole{role: "value", name: conf.ValueColumn, numeric: numeric},
	)
	if err != nil {
		return nil, err
	}
	if conf.TotalRowCount <= 0 {
		return nil, base.configurationError(fmt.Sprintf("total row count must be positive, was %d", conf.TotalRowCount), nil)
	}
	return &scaledGroups{
		aggregator:    base,
		keyFn:         ColumnKey(conf.GroupByColumn),
		groups:        createGroupTable(factory(conf.ValueColumn)),
		totalRowCount: conf.TotalRowCount,
	}, nil
}

// processSlice merges raw per-group statistics and advances the row counter, returning the new scale
func (g *scaledGroups) processSlice(s ola.Slice) (float64, error) {
	if err := g.begin(s); err != nil {
		return 0, err
	}
	local, err := g.groups.accumulateSlice(s, g.keyFn, nil)
	if err != nil {
		return 0, g.rowError(s, err)
	}
	if err = g.groups.merge(local); err != nil {
		return 0, g.rowError(s, err)
	}
	g.rowsSeen += int64(s.GetNumRows())
	if g.rowsSeen > g.totalRowCount && !g.warned {
		g.warned = true
		g.logger.Warnf("%d rows seen exceeds the total row count of %d; estimates will be scaled down", g.rowsSeen, g.totalRowCount)
	}
	return scaleFactor(g.totalRowCount, g.rowsSeen), nil
}

// RowsSeen returns the number of rows processed so far
func (g *scaledGroups) RowsSeen() int64 {
	return g.rowsSeen
}

// Scale returns the current scale correction factor, which is NaN before any rows have been seen
func (g *scaledGroups) Scale() float64 {
	return scaleFactor(g.totalRowCount, g.rowsSeen)
}

// NumGroups returns the number of distinct groups seen so far
func (g *scaledGroups) NumGroups() int {
	return g.groups.numGroups()
}

// GroupedSum estimates the sum of a value column for every group over the complete
// dataset, by scaling the raw sums over the rows seen so far by the inverse of the
// fraction of the dataset seen
type GroupedSum struct {
	*scaledGroups
}

// CreateGroupedSum returns a new GroupedSum Aggregator summing conf.ValueColumn within
// groups formed by conf.GroupByColumn, over a dataset of conf.TotalRowCount rows
func CreateGroupedSum(sink ola.Sink, conf *Conf) (*GroupedSum, error) {
	g, err := createScaledGroups("GroupedSum", sink, conf.withDefaults(), accumulators.Adder, true)
	if err != nil {
		return nil, err
	}
	return &GroupedSum{g}, nil
}

// ProcessSlice merges the per-group raw sums of a Slice and emits scaled sums for every group seen so far
func (a *GroupedSum) ProcessSlice(s ola.Slice) error {
	scale, err := a.processSlice(s)
	if err != nil {
		return err
	}
	return a.emit(s, a.groups.estimate(func(acc ola.Accumulator) float64 {
		return acc.(*accumulators.Sum).GetSum() * scale
	}))
}

// GroupedCount estimates the number of non-nil values of a column for every group over
// the complete dataset, by scaling the raw counts over the rows seen so far by the
// inverse of the fraction of the dataset seen
type GroupedCount struct {
	*scaledGroups
}

// CreateGroupedCount returns a new GroupedCount Aggregator counting conf.ValueColumn within
// groups formed by conf.GroupByColumn, over a dataset of conf.TotalRowCount rows
func CreateGroupedCount(sink ola.Sink, conf *Conf) (*GroupedCount, error) {
	g, err := createScaledGroups("GroupedCount", sink, conf.withDefaults(), accumulators.NonNilCounter, false)
	if err != nil {
		return nil, err
	}
	return &GroupedCount{g}, nil
}

// ProcessSlice merges the per-group raw counts of a Slice and emits scaled counts for every group seen so far
func (a *GroupedCount) ProcessSlice(s ola.Slice) error {
	scale, err := a.processSlice(s)
	if err != nil {
		return err
	}
	return a.emit(s, a.groups.estimate(func(acc ola.Accumulator) float64 {
		return float64(acc.(*accumulators.Count).GetCount()) * scale
	}))
}
