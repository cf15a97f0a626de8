package database

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
)

// fakeDriver serves fixed tables from memory. A query of the form
// "SELECT COUNT(*) FROM (<q>) AS ola_count" counts the rows of table <q>.
type fakeDriver struct {
	lock    sync.Mutex
	columns map[string][]string
	tables  map[string][][]driver.Value
	closed  map[string]int
}

var testDriver = &fakeDriver{columns: map[string][]string{}, tables: map[string][][]driver.Value{}, closed: map[string]int{}}

func init() {
	sql.Register("olafake", testDriver)
}

func (d *fakeDriver) addTable(name string, columns []string, rows [][]driver.Value) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.columns[name] = columns
	d.tables[name] = rows
}

func (d *fakeDriver) Open(name string) (driver.Conn, error) {
	return &fakeConn{driver: d}, nil
}

type fakeConn struct {
	driver *fakeDriver
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{conn: c, query: query}, nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transactions are not supported")
}

type fakeStmt struct {
	conn  *fakeConn
	query string
}

func (s *fakeStmt) Close() error {
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, fmt.Errorf("exec is not supported")
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	d := s.conn.driver
	d.lock.Lock()
	defer d.lock.Unlock()
	query := strings.TrimSpace(s.query)
	if strings.HasPrefix(query, "SELECT COUNT(*) FROM (") {
		table := strings.TrimSuffix(strings.TrimPrefix(query, "SELECT COUNT(*) FROM ("), ") AS ola_count")
		rows, ok := d.tables[table]
		if !ok {
			return nil, fmt.Errorf("no such table %s", table)
		}
		return &fakeRows{columns: []string{"count"}, rows: [][]driver.Value{{int64(len(rows))}}}, nil
	}
	rows, ok := d.tables[query]
	if !ok {
		return nil, fmt.Errorf("no such table %s", query)
	}
	return &fakeRows{driver: d, table: query, columns: d.columns[query], rows: rows}, nil
}

// numClosed returns the number of times a result set over the given table has been closed
func (d *fakeDriver) numClosed(table string) int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.closed[table]
}

type fakeRows struct {
	driver  *fakeDriver
	table   string
	columns []string
	rows    [][]driver.Value
	next    int
}

func (r *fakeRows) Columns() []string {
	return r.columns
}

func (r *fakeRows) Close() error {
	if r.driver != nil {
		r.driver.lock.Lock()
		r.driver.closed[r.table]++
		r.driver.lock.Unlock()
	}
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}
