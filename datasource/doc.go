// Package datasource contains the shared machinery of ola's DataSources, which
// divide a dataset into an ordered sequence of Slices
package datasource
