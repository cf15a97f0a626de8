package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/columntype"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/errors"
)

// Conf configures a database DataSource
type Conf struct {
	SliceSize    int           // The maximum number of rows per Slice. Defaults to 128.
	QueryTimeout time.Duration // If non-zero, bounds the time taken to count rows. Reading rows is bounded by the Context given to Open instead.
}

// DataSource is a SQL query whose result rows will be divided into Slices. Result
// columns are matched to Schema columns by name; result columns absent from the
// Schema are ignored.
type DataSource struct {
	db     *sql.DB
	query  string
	params []interface{}
	schema ola.Schema
	conf   *Conf
}

var _ ola.DataSource = (*DataSource)(nil)

// CreateDataSource is a factory for DataSources
func CreateDataSource(db *sql.DB, query string, params []interface{}, schema ola.Schema, conf *Conf) (*DataSource, error) {
	if len(strings.TrimSpace(query)) == 0 {
		return nil, fmt.Errorf("query is required")
	}
	c := &Conf{}
	if conf != nil {
		*c = *conf
	}
	if c.SliceSize == 0 {
		c.SliceSize = datasource.DefaultSliceSize
	}
	return &DataSource{db: db, query: query, params: params, schema: schema, conf: c}, nil
}

// Open executes the query and returns a SliceIterator over its results. The
// result set is closed when the iterator ends or is closed.
func (ds *DataSource) Open(ctx context.Context) (ola.SliceIterator, error) {
	rows, err := ds.db.QueryContext(ctx, ds.query, ds.params...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	columnNames, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	mapping, err := ds.mapColumns(columnNames)
	if err != nil {
		rows.Close()
		return nil, err
	}
	// prepare scan buffers
	values := make([]interface{}, len(columnNames))
	scanBuffer := make([]interface{}, len(columnNames))
	for i := range scanBuffer {
		scanBuffer[i] = &values[i]
	}
	colTypes := ds.schema.ColumnTypes()
	colNames := ds.schema.ColumnNames()
	it := datasource.CreateClosingSliceIterator(ds.conf.SliceSize, ds.schema, func(s ola.BuildableSlice) error {
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		if err := rows.Scan(scanBuffer...); err != nil {
			return err
		}
		rowValues := make([]interface{}, len(colTypes))
		for i, resultIdx := range mapping {
			v, err := convertSQLValue(values[resultIdx], colTypes[i])
			if err != nil {
				return errors.ValueTypeError{Name: colNames[i], Value: values[resultIdx], Expected: colTypes[i].Name()}
			}
			rowValues[i] = v
		}
		return s.AppendValues(rowValues)
	}, rows.Close)
	return it, nil
}

// CountRows returns the number of rows produced by the query, which is suitable as the
// total row count of a scaled aggregation
func (ds *DataSource) CountRows(ctx context.Context) (int64, error) {
	if ds.conf.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ds.conf.QueryTimeout)
		defer cancel()
	}
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS ola_count", strings.TrimRight(strings.TrimSpace(ds.query), ";"))
	var count int64
	if err := ds.db.QueryRowContext(ctx, countSQL, ds.params...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return count, nil
}

// mapColumns finds the result column index for each Schema column
func (ds *DataSource) mapColumns(columnNames []string) ([]int, error) {
	byName := make(map[string]int, len(columnNames))
	for i, name := range columnNames {
		byName[name] = i
	}
	mapping := make([]int, ds.schema.NumColumns())
	for i, name := range ds.schema.ColumnNames() {
		idx, ok := byName[name]
		if !ok {
			return nil, errors.MissingColumnError{Name: name}
		}
		mapping[i] = idx
	}
	return mapping, nil
}

// convertSQLValue converts SQL driver values to the canonical value of a column type
func convertSQLValue(value interface{}, colType ola.ColumnType) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		// text and numeric types arrive as bytes from many drivers
		return colType.Parse(string(v))
	case string:
		return colType.Parse(v)
	case time.Time:
		if _, ok := colType.(*columntype.VarStringColumnType); ok {
			return v.Format(time.RFC3339Nano), nil
		}
		return nil, fmt.Errorf("%v is not a %s", v, colType.Name())
	default:
		return colType.Coerce(v)
	}
}
