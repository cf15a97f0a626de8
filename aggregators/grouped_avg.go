package aggregators

import (
	"github.com/go-sif/ola"
	"github.com/go-sif/ola/accumulators"
)

// GroupedAvg maintains a running average of a value column for every group
type GroupedAvg struct {
	*aggregator
	keyFn  ola.GroupKeyExtractor
	groups *groupTable
}

// CreateGroupedAvg returns a new GroupedAvg Aggregator averaging conf.ValueColumn
// within groups formed by conf.GroupByColumn
func CreateGroupedAvg(sink ola.Sink, conf *Conf) (*GroupedAvg, error) {
	conf = conf.withDefaults()
	base, err := createAggregator("GroupedAvg", sink, conf,
		columnRole{role: "group-by", name: conf.GroupByColumn},
		columnRole{role: "value", name: conf.ValueColumn, numeric: true},
	)
	if err != nil {
		return nil, err
	}
	return &GroupedAvg{
		aggregator: base,
		keyFn:      ColumnKey(conf.GroupByColumn),
		groups:     createGroupTable(accumulators.Averager(conf.ValueColumn)),
	}, nil
}

// ProcessSlice merges the per-group sums and counts of a Slice into the running
// statistics, and emits the average of every group seen so far
func (a *GroupedAvg) ProcessSlice(s ola.Slice) error {
	if err := a.begin(s); err != nil {
		return err
	}
	local, err := a.groups.accumulateSlice(s, a.keyFn, nil)
	if err != nil {
		return a.rowError(s, err)
	}
	if err = a.groups.merge(local); err != nil {
		return a.rowError(s, err)
	}
	return a.emit(s, a.groups.estimate(func(acc ola.Accumulator) float64 {
		return acc.(*accumulators.Mean).GetMean()
	}))
}

// NumGroups returns the number of distinct groups seen so far
func (a *GroupedAvg) NumGroups() int {
	return a.groups.numGroups()
}
