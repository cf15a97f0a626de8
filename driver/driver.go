package driver

import (
	"context"
	goerrors "errors"
	"fmt"
	"log"
	"runtime"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/errors"
	"github.com/go-sif/ola/internal/util"
	"github.com/go-sif/ola/logging"
	"github.com/go-sif/ola/stats"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Conf configures a Driver
type Conf struct {
	Parallelism     int             // The maximum number of Aggregators processing a Slice at once. Defaults to GOMAXPROCS.
	IgnoreRowErrors bool            // Iff true, an Aggregator which rejects a Slice keeps receiving Slices. Configuration errors always retire an Aggregator.
	Logger          *logging.Logger // Defaults to a Logger which discards messages
}

type entry struct {
	agg     ola.Aggregator
	retired bool
}

// Driver feeds Slices to Aggregators. Each Aggregator receives every Slice in
// iterator order, and all Aggregators finish a Slice before the next is read.
// An Aggregator which fails is retired without affecting the others.
type Driver struct {
	id      string
	conf    *Conf
	entries []*entry
	stats   *stats.RunStatistics
	logger  *logging.Logger
}

// CreateDriver is a factory for Drivers
func CreateDriver(conf *Conf, aggs ...ola.Aggregator) (*Driver, error) {
	if len(aggs) == 0 {
		return nil, fmt.Errorf("at least one Aggregator is required")
	}
	c := &Conf{}
	if conf != nil {
		*c = *conf
	}
	if c.Parallelism <= 0 {
		c.Parallelism = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Driver: %v", err)
	}
	entries := make([]*entry, len(aggs))
	for i, agg := range aggs {
		if agg == nil {
			return nil, fmt.Errorf("Aggregator %d is nil", i)
		}
		entries[i] = &entry{agg: agg}
	}
	return &Driver{
		id:      id.String(),
		conf:    c,
		entries: entries,
		stats:   &stats.RunStatistics{},
		logger:  c.Logger.With(fmt.Sprintf("driver %s", id.String())),
	}, nil
}

// ID returns the unique ID of this Driver's run
func (d *Driver) ID() string {
	return d.id
}

// Stats returns the runtime statistics of this Driver's run
func (d *Driver) Stats() ola.RuntimeStatistics {
	return d.stats
}

// Estimates returns the current Estimate of every Aggregator, in the order they were given to CreateDriver
func (d *Driver) Estimates() []ola.Estimate {
	res := make([]ola.Estimate, len(d.entries))
	for i, e := range d.entries {
		res[i] = e.agg.Estimate()
	}
	return res
}

// NumActive returns the number of Aggregators which have not been retired
func (d *Driver) NumActive() int {
	active := 0
	for _, e := range d.entries {
		if !e.retired {
			active++
		}
	}
	return active
}

// Run delivers every Slice from a SliceIterator to the Aggregators, stopping when the
// iterator is exhausted, the Context is done, or every Aggregator has been retired. The
// Context is checked between Slices. Errors from all Aggregators are combined. The
// SliceIterator is closed when Run returns.
func (d *Driver) Run(ctx context.Context, it ola.SliceIterator) error {
	defer it.Close()
	d.stats.Start()
	defer d.stats.Finish()
	d.logger.Infof("starting run over %d aggregator(s)", len(d.entries))

	multierr := &multierror.Error{ErrorFormat: util.FormatMultiError}
	for it.HasNextSlice() {
		if err := ctx.Err(); err != nil {
			multierr = multierror.Append(multierr, err)
			break
		}
		if d.NumActive() == 0 {
			d.logger.Warnf("every aggregator has been retired")
			break
		}
		s, err := it.NextSlice()
		if datasource.IsEnd(err) {
			break
		} else if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("unable to read slice: %w", err))
			break
		}
		d.stats.StartSlice()
		errs := d.processSlice(s)
		d.stats.EndSlice(s.GetNumRows())
		for _, err := range errs {
			multierr = multierror.Append(multierr, err)
		}
	}
	d.logger.Infof("finished run: %d slice(s), %d row(s) in %s", d.stats.GetNumSlicesProcessed(), d.stats.GetNumRowsProcessed(), d.stats.GetRuntime())
	if err := multierr.ErrorOrNil(); err != nil {
		d.logger.Errorf("%s", err.Error())
		return err
	}
	return nil
}

// processSlice hands a Slice to every active Aggregator and waits for all of them to finish
func (d *Driver) processSlice(s ola.Slice) []error {
	errs := make([]error, len(d.entries))
	var g errgroup.Group
	g.SetLimit(d.conf.Parallelism)
	for i, e := range d.entries {
		if e.retired {
			continue
		}
		i, e := i, e
		g.Go(func() error {
			err := util.SafeProcessSlice(e.agg, s)
			if err == nil {
				return nil
			}
			var confErr *errors.ConfigurationError
			if goerrors.As(err, &confErr) || !d.conf.IgnoreRowErrors {
				e.retired = true
				d.logger.Warnf("retiring aggregator %d: %v", i, err)
			} else {
				d.logger.Warnf("aggregator %d rejected slice %s: %v", i, s.ID(), err)
			}
			errs[i] = fmt.Errorf("aggregator %d: %w", i, err)
			return nil
		})
	}
	g.Wait()
	res := []error{}
	for _, err := range errs {
		if err != nil {
			res = append(res, err)
		}
	}
	return res
}
