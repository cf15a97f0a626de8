// Package stats tracks runtime statistics for an aggregation run
package stats
