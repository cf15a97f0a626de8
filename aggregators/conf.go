package aggregators

import (
	"github.com/go-sif/ola"
	"github.com/go-sif/ola/logging"
	"github.com/go-sif/ola/sketch"
)

// Conf configures an Aggregator. The applicable subset of fields depends on the
// Aggregator, and the configuration is immutable once the Aggregator is created.
type Conf struct {
	GroupByColumn      string          // The column whose values form group keys, for grouped Aggregators
	ValueColumn        string          // The column being averaged, summed, counted or distinct-counted
	FilterColumn       string          // The column compared against FilterValue, for filtered Aggregators
	FilterValue        interface{}     // Rows are kept iff their FilterColumn value equals this value. A nil FilterValue matches nothing.
	TotalRowCount      int64           // The number of rows in the complete dataset, required by scale-corrected Aggregators
	EstimatorPrecision uint8           // The precision of the CardinalityEstimator, between 4 and 18. Defaults to 14.
	EstimatorSeed      uint64          // The hash seed of the CardinalityEstimator. Defaults to 123456789.
	Schema             ola.Schema      // If provided, columns are validated against this Schema at construction rather than on the first Slice
	Logger             *logging.Logger // Defaults to a Logger which discards messages
}

// withDefaults returns a copy of this Conf with defaults filled in
func (c *Conf) withDefaults() *Conf {
	conf := &Conf{}
	if c != nil {
		*conf = *c
	}
	if conf.EstimatorPrecision == 0 {
		conf.EstimatorPrecision = sketch.DefaultPrecision
	}
	if conf.EstimatorSeed == 0 {
		conf.EstimatorSeed = sketch.DefaultSeed
	}
	if conf.Logger == nil {
		conf.Logger = logging.Discard()
	}
	return conf
}
