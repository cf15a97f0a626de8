package sink

import (
	"sync"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/logging"
)

// LogSink writes every Estimate to a Logger at InfoLevel
type LogSink struct {
	logger *logging.Logger
	lock   sync.Mutex
	step   int
}

// CreateLogSink returns a new LogSink
func CreateLogSink(logger *logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Update logs an Estimate
func (l *LogSink) Update(estimate ola.Estimate) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.step++
	l.logger.Infof("estimate %d: %s", l.step, estimate.ToString())
	return nil
}
