// Package database provides a DataSource over the results of a database/sql query.
// Any registered driver may be used; the ola command registers
// https://github.com/lib/pq for PostgreSQL.
package database
