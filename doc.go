// Package ola contains the core components of ola, a library for online aggregation: computing
// progressively refined estimates of aggregate queries over a dataset which arrives as a sequence
// of row Slices. This root package defines the types employed during regular use of the library
// (Rows, Slices, Aggregators, Estimates and Sinks), as well as in its extension, and is an
// excellent overview of its key concepts.
package ola
