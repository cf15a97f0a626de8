package datasource

import (
	"io"
	"sync"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/errors"
	"github.com/go-sif/ola/slice"
)

// DefaultSliceSize is the maximum number of rows per Slice when none is configured
const DefaultSliceSize = 128

// A RowReader appends the next row of a dataset to a Slice, returning io.EOF when the dataset is exhausted
type RowReader func(s ola.BuildableSlice) error

type sliceIterator struct {
	sliceSize    int
	schema       ola.Schema
	read         RowReader
	hasNext      bool
	lock         sync.Mutex
	endListeners []func()
	closer       func() error
	closed       bool
	closeErr     error
}

// CreateSliceIterator returns a SliceIterator which fills Slices of at most sliceSize rows using
// a RowReader. A trailing empty Slice is never produced: once the RowReader is exhausted, NextSlice
// returns a NoMoreSlicesError instead.
func CreateSliceIterator(sliceSize int, schema ola.Schema, read RowReader) ola.SliceIterator {
	return CreateClosingSliceIterator(sliceSize, schema, read, nil)
}

// CreateClosingSliceIterator is CreateSliceIterator for RowReaders which hold resources, such as
// open files or result sets. The closer runs exactly once: when the RowReader is exhausted, or when
// Close is called, whichever comes first.
func CreateClosingSliceIterator(sliceSize int, schema ola.Schema, read RowReader, closer func() error) ola.SliceIterator {
	if sliceSize <= 0 {
		sliceSize = DefaultSliceSize
	}
	return &sliceIterator{
		sliceSize:    sliceSize,
		schema:       schema,
		read:         read,
		hasNext:      true,
		endListeners: []func(){},
		closer:       closer,
	}
}

// OnEnd registers a listener which fires when this iterator runs out of Slices
func (si *sliceIterator) OnEnd(onEnd func()) {
	si.lock.Lock()
	defer si.lock.Unlock()
	if !si.hasNext {
		onEnd()
		return
	}
	si.endListeners = append(si.endListeners, onEnd)
}

// HasNextSlice returns true iff this SliceIterator can produce another Slice
func (si *sliceIterator) HasNextSlice() bool {
	si.lock.Lock()
	defer si.lock.Unlock()
	return si.hasNext
}

// NextSlice returns the next Slice if one is available, or an error
func (si *sliceIterator) NextSlice() (ola.Slice, error) {
	si.lock.Lock()
	defer si.lock.Unlock()
	if !si.hasNext {
		return nil, errors.NoMoreSlicesError{}
	}
	s := slice.CreateSlice(si.sliceSize, si.schema)
	for s.GetNumRows() < si.sliceSize {
		err := si.read(s)
		if err == io.EOF {
			si.end()
			si.release()
			if s.GetNumRows() == 0 {
				return nil, errors.NoMoreSlicesError{}
			}
			return s, nil
		} else if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Close stops this SliceIterator and releases its resources. Subsequent calls to NextSlice
// return a NoMoreSlicesError. It is safe to call Close more than once.
func (si *sliceIterator) Close() error {
	si.lock.Lock()
	defer si.lock.Unlock()
	if si.hasNext {
		si.end()
	}
	si.release()
	return si.closeErr
}

func (si *sliceIterator) release() {
	if si.closed {
		return
	}
	si.closed = true
	if si.closer != nil {
		si.closeErr = si.closer()
	}
}

func (si *sliceIterator) end() {
	si.hasNext = false
	for _, l := range si.endListeners {
		l()
	}
	si.endListeners = []func(){}
}

// A Parser decodes a stream of rows, such as the contents of a file
type Parser interface {
	SliceSize() int                                          // SliceSize returns the maximum size in rows of Slices produced from this Parser's rows
	Parse(r io.Reader, schema ola.Schema) (RowReader, error) // Parse prepares a RowReader over r, consuming any header lines
}
