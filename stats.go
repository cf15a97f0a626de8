package ola

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a running aggregation
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the run
	GetRuntime() time.Duration
	// GetNumRowsProcessed returns the number of Rows which have been delivered so far
	GetNumRowsProcessed() int64
	// GetNumSlicesProcessed returns the number of Slices which have been delivered so far
	GetNumSlicesProcessed() int64
	// GetCurrentSliceProcessingTime returns a rolling average of slice processing time
	GetCurrentSliceProcessingTime() time.Duration
}
