package aggregators

import (
	"github.com/go-sif/ola"
	"github.com/go-sif/ola/accumulators"
)

// Avg maintains a running average of the non-nil values of a column
type Avg struct {
	*aggregator
	mean    *accumulators.Mean
	colName string
}

// CreateAvg returns a new Avg Aggregator over conf.ValueColumn
func CreateAvg(sink ola.Sink, conf *Conf) (*Avg, error) {
	conf = conf.withDefaults()
	base, err := createAggregator("Avg", sink, conf,
		columnRole{role: "value", name: conf.ValueColumn, numeric: true},
	)
	if err != nil {
		return nil, err
	}
	return &Avg{
		aggregator: base,
		mean:       accumulators.Averager(conf.ValueColumn)().(*accumulators.Mean),
		colName:    conf.ValueColumn,
	}, nil
}

// ProcessSlice adds the sum and count of a Slice's values to the running totals, and emits their ratio
func (a *Avg) ProcessSlice(s ola.Slice) error {
	if err := a.begin(s); err != nil {
		return err
	}
	if err := mergeMean(a.mean, a.colName, s, nil); err != nil {
		return a.rowError(s, err)
	}
	return a.emit(s, ola.SingleEstimate(a.mean.GetMean()))
}

// FilteredAvg maintains a running average of the non-nil values of a column,
// over the rows whose filter column equals a filter value
type FilteredAvg struct {
	*aggregator
	mean    *accumulators.Mean
	colName string
	filter  *filter
}

// CreateFilteredAvg returns a new FilteredAvg Aggregator over conf.ValueColumn, restricted
// to rows where conf.FilterColumn equals conf.FilterValue
func CreateFilteredAvg(sink ola.Sink, conf *Conf) (*FilteredAvg, error) {
	conf = conf.withDefaults()
	base, err := createAggregator("FilteredAvg", sink, conf,
		columnRole{role: "value", name: conf.ValueColumn, numeric: true},
		columnRole{role: "filter", name: conf.FilterColumn},
	)
	if err != nil {
		return nil, err
	}
	if !isComparable(conf.FilterValue) {
		return nil, base.configurationError("filter value must be a comparable scalar", nil)
	}
	return &FilteredAvg{
		aggregator: base,
		mean:       accumulators.Averager(conf.ValueColumn)().(*accumulators.Mean),
		colName:    conf.ValueColumn,
		filter:     &filter{column: conf.FilterColumn, value: conf.FilterValue},
	}, nil
}

// ProcessSlice adds the sum and count of a Slice's matching values to the running totals, and emits their ratio
func (a *FilteredAvg) ProcessSlice(s ola.Slice) error {
	if err := a.begin(s); err != nil {
		return err
	}
	if err := mergeMean(a.mean, a.colName, s, a.filter.matches); err != nil {
		return a.rowError(s, err)
	}
	return a.emit(s, ola.SingleEstimate(a.mean.GetMean()))
}

// mergeMean accumulates a slice-local Mean and merges it into a running one, so that
// a row error leaves the running Mean untouched
func mergeMean(running *accumulators.Mean, colName string, s ola.Slice, keep func(ola.Row) (bool, error)) error {
	local := accumulators.Averager(colName)()
	err := s.ForEachRow(func(row ola.Row) error {
		if keep != nil {
			ok, err := keep(row)
			if err != nil || !ok {
				return err
			}
		}
		return local.Accumulate(row)
	})
	if err != nil {
		return err
	}
	return running.Merge(local)
}
