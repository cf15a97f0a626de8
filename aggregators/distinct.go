package aggregators

import (
	"github.com/go-sif/ola"
	"github.com/go-sif/ola/sketch"
)

// FilteredDistinct approximates the number of distinct values of a column among the
// rows processed so far whose filter column equals a filter value. The estimate is not
// scaled to the complete dataset.
type FilteredDistinct struct {
	*aggregator
	colName   string
	filter    *filter
	estimator ola.CardinalityEstimator
}

// CreateFilteredDistinct returns a new FilteredDistinct Aggregator over conf.ValueColumn,
// restricted to rows where conf.FilterColumn equals conf.FilterValue, and backed by a
// HyperLogLog configured with conf.EstimatorPrecision and conf.EstimatorSeed
func CreateFilteredDistinct(sink ola.Sink, conf *Conf) (*FilteredDistinct, error) {
	conf = conf.withDefaults()
	hll, err := sketch.CreateHyperLogLog(conf.EstimatorPrecision, conf.EstimatorSeed)
	if err != nil {
		base := &aggregator{name: "FilteredDistinct"}
		return nil, base.configurationError("estimator precision", err)
	}
	return CreateFilteredDistinctWithEstimator(sink, conf, hll)
}

// CreateFilteredDistinctWithEstimator returns a new FilteredDistinct Aggregator which takes
// exclusive ownership of the given CardinalityEstimator
func CreateFilteredDistinctWithEstimator(sink ola.Sink, conf *Conf, estimator ola.CardinalityEstimator) (*FilteredDistinct, error) {
	conf = conf.withDefaults()
	base, err := createAggregator("FilteredDistinct", sink, conf,
		columnRole{role: "distinct", name: conf.ValueColumn},
		columnRole{role: "filter", name: conf.FilterColumn},
	)
	if err != nil {
		return nil, err
	}
	if estimator == nil {
		return nil, base.configurationError("a CardinalityEstimator is required", nil)
	}
	if !isComparable(conf.FilterValue) {
		return nil, base.configurationError("filter value must be a comparable scalar", nil)
	}
	return &FilteredDistinct{
		aggregator: base,
		colName:    conf.ValueColumn,
		filter:     &filter{column: conf.FilterColumn, value: conf.FilterValue},
		estimator:  estimator,
	}, nil
}

// ProcessSlice feeds the string form of every matching row's value into the
// CardinalityEstimator, and emits its current cardinality
func (a *FilteredDistinct) ProcessSlice(s ola.Slice) error {
	if err := a.begin(s); err != nil {
		return err
	}
	values := make([]string, 0, s.GetNumRows())
	err := s.ForEachRow(func(row ola.Row) error {
		ok, err := a.filter.matches(row)
		if err != nil || !ok {
			return err
		}
		v, err := row.GetString(a.colName)
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return a.rowError(s, err)
	}
	for _, v := range values {
		a.estimator.Add(v)
	}
	return a.emit(s, ola.SingleEstimate(a.estimator.Cardinality()))
}
