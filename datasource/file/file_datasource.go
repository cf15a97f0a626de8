package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
)

// DataSource is a set of files containing rows, read in the order of their names
type DataSource struct {
	files  []string
	parser datasource.Parser
	schema ola.Schema
}

var _ ola.DataSource = (*DataSource)(nil)

// CreateDataSource is a factory for DataSources. The glob must match at least one file.
func CreateDataSource(glob string, parser datasource.Parser, schema ola.Schema) (*DataSource, error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	return &DataSource{files: matches, parser: parser, schema: schema}, nil
}

// Files returns the paths of the files in this DataSource, in the order in which they are read
func (fs *DataSource) Files() []string {
	res := make([]string, len(fs.files))
	copy(res, fs.files)
	return res
}

// Open returns a new SliceIterator over every file in this DataSource. A Slice may contain
// rows from consecutive files. Each file is closed once it has been read, and the file
// being read is closed by the iterator's Close.
func (fs *DataSource) Open(ctx context.Context) (ola.SliceIterator, error) {
	it, _ := fs.open()
	return it, nil
}

// CountRows reads every file in this DataSource and returns the total number of rows
func (fs *DataSource) CountRows(ctx context.Context) (int64, error) {
	it, _ := fs.open()
	defer it.Close()
	return datasource.CountRows(it)
}

func (fs *DataSource) open() (ola.SliceIterator, *fileLoader) {
	loader := &fileLoader{source: fs}
	it := datasource.CreateClosingSliceIterator(fs.parser.SliceSize(), fs.schema, loader.read, loader.close)
	return it, loader
}

// fileLoader opens each file in turn, and reads rows from it
type fileLoader struct {
	source  *DataSource
	next    int
	current io.ReadCloser
	reader  datasource.RowReader
}

func (fl *fileLoader) read(s ola.BuildableSlice) error {
	for {
		if fl.reader == nil {
			if fl.next >= len(fl.source.files) {
				return io.EOF
			}
			if err := fl.open(fl.source.files[fl.next]); err != nil {
				return err
			}
			fl.next++
		}
		err := fl.reader(s)
		if err != io.EOF {
			return err
		}
		if err := fl.close(); err != nil {
			return err
		}
	}
}

func (fl *fileLoader) open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	reader, err := fl.source.parser.Parse(f, fl.source.schema)
	if err != nil {
		f.Close()
		return fmt.Errorf("unable to parse %s: %w", path, err)
	}
	fl.current = f
	fl.reader = reader
	return nil
}

func (fl *fileLoader) close() error {
	var err error
	if fl.current != nil {
		err = fl.current.Close()
	}
	fl.current = nil
	fl.reader = nil
	return err
}
