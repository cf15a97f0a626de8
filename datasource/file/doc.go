// Package file provides a DataSource which reads one or more files matched by a glob, in name order
package file
