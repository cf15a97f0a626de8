package stats

import (
	"sync"
	"time"

	"github.com/go-sif/ola"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about a running aggregation. It is safe
// to read from one goroutine while another records progress.
type RunStatistics struct {
	lock                    sync.RWMutex
	started                 bool
	finished                bool
	startTime               time.Time
	totalRuntime            time.Duration
	rowsProcessed           int64
	slicesProcessed         int64
	recentSliceRuntimes     []time.Duration // for rolling average of recent slice processing times
	recentSliceRuntimesHead int
	recentSliceRuntimesSize int

	// temp vars
	currentSliceStartTime time.Time
}

var _ ola.RuntimeStatistics = (*RunStatistics)(nil)

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.recentSliceRuntimes = make([]time.Duration, statisticRollingWindows)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.started && !rs.finished {
		rs.finished = true
		rs.totalRuntime = time.Since(rs.startTime)
	}
}

// StartSlice tracks the beginning of the processing of a Slice
func (rs *RunStatistics) StartSlice() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.currentSliceStartTime = time.Now()
}

// EndSlice tracks the end of the processing of a Slice
func (rs *RunStatistics) EndSlice(numRows int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		return
	}
	rs.recentSliceRuntimes[rs.recentSliceRuntimesHead] = time.Since(rs.currentSliceStartTime)
	rs.recentSliceRuntimesHead = (rs.recentSliceRuntimesHead + 1) % len(rs.recentSliceRuntimes)
	if rs.recentSliceRuntimesSize < len(rs.recentSliceRuntimes) {
		rs.recentSliceRuntimesSize++
	}
	rs.rowsProcessed += int64(numRows)
	rs.slicesProcessed++
}

// IsStarted returns true iff tracking has begun
func (rs *RunStatistics) IsStarted() bool {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	return rs.started
}

// IsFinished returns true iff tracking has completed
func (rs *RunStatistics) IsFinished() bool {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	return rs.finished
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	if !rs.started {
		return 0
	}
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetNumRowsProcessed returns the number of Rows which have been processed so far
func (rs *RunStatistics) GetNumRowsProcessed() int64 {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	return rs.rowsProcessed
}

// GetNumSlicesProcessed returns the number of Slices which have been processed so far
func (rs *RunStatistics) GetNumSlicesProcessed() int64 {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	return rs.slicesProcessed
}

// GetCurrentSliceProcessingTime returns a rolling average of slice processing time
func (rs *RunStatistics) GetCurrentSliceProcessingTime() time.Duration {
	rs.lock.RLock()
	defer rs.lock.RUnlock()
	if rs.recentSliceRuntimesSize == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range rs.recentSliceRuntimes {
		total += d
	}
	return total / time.Duration(rs.recentSliceRuntimesSize)
}
