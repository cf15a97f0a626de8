package memory

import (
	"bytes"
	"context"
	"io"
	"math/rand"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
)

// Conf configures an in-memory DataSource
type Conf struct {
	SliceSize int   // The maximum number of rows per Slice. Defaults to 128.
	Shuffle   bool  // If true, rows are delivered in a random order, so that every prefix of the Slices is a uniform random sample
	Seed      int64 // The seed for Shuffle, so that shuffled runs are reproducible. Defaults to 0.
}

// DataSource is a buffer of rows which will be divided into Slices
type DataSource struct {
	rows   []map[string]interface{}
	schema ola.Schema
	conf   *Conf
}

var _ ola.DataSource = (*DataSource)(nil)

// CreateDataSource is a factory for DataSources over named row values
func CreateDataSource(rows []map[string]interface{}, schema ola.Schema, conf *Conf) *DataSource {
	c := &Conf{}
	if conf != nil {
		*c = *conf
	}
	if c.SliceSize == 0 {
		c.SliceSize = datasource.DefaultSliceSize
	}
	return &DataSource{rows: rows, schema: schema, conf: c}
}

// NumRows returns the total number of rows in this DataSource
func (ms *DataSource) NumRows() int64 {
	return int64(len(ms.rows))
}

// CountRows returns the total number of rows in this DataSource
func (ms *DataSource) CountRows(ctx context.Context) (int64, error) {
	return ms.NumRows(), nil
}

// Open returns a new SliceIterator over the rows of this DataSource. Repeated calls with
// the same Seed produce the same sequence of Slices.
func (ms *DataSource) Open(ctx context.Context) (ola.SliceIterator, error) {
	return ms.Iterate(), nil
}

// Iterate is Open, for callers without a Context
func (ms *DataSource) Iterate() ola.SliceIterator {
	order := make([]int, len(ms.rows))
	for i := range order {
		order[i] = i
	}
	if ms.conf.Shuffle {
		rand.New(rand.NewSource(ms.conf.Seed)).Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	next := 0
	return datasource.CreateSliceIterator(ms.conf.SliceSize, ms.schema, func(s ola.BuildableSlice) error {
		if next >= len(order) {
			return io.EOF
		}
		row := ms.rows[order[next]]
		next++
		return s.AppendRow(row)
	})
}

// Parse returns a SliceIterator over buffers of encoded data, such as DSV or JSONL, which are read in order
func Parse(data [][]byte, parser datasource.Parser, schema ola.Schema) ola.SliceIterator {
	next := 0
	var reader datasource.RowReader
	return datasource.CreateSliceIterator(parser.SliceSize(), schema, func(s ola.BuildableSlice) error {
		for {
			if reader == nil {
				if next >= len(data) {
					return io.EOF
				}
				r, err := parser.Parse(bytes.NewReader(data[next]), schema)
				if err != nil {
					return err
				}
				reader = r
				next++
			}
			err := reader(s)
			if err != io.EOF {
				return err
			}
			reader = nil
		}
	})
}
