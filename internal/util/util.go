package util

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-sif/ola"
)

// SafeProcessSlice passes a Slice to an Aggregator, recovering panics and constructing nice error messages
func SafeProcessSlice(agg ola.Aggregator, s ola.Slice) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Aggregator Panic: %w\nSlice: %s\n%s", anErr, s.ID(), GetTrace())
			} else {
				err = fmt.Errorf("Aggregator Panic: %v\nSlice: %s\n%s", r, s.ID(), GetTrace())
			}
		}
	}()
	err = agg.ProcessSlice(s)
	return
}

// GetTrace returns a printable stack trace, excluding runtime frames
func GetTrace() string {
	var name, file string
	var line int
	var pc [16]uintptr
	var res strings.Builder
	n := runtime.Callers(3, pc[:])
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", name, file, line)
		}
	}
	return res.String()
}

// FormatMultiError formats multierrors for logging
func FormatMultiError(merrs []error) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "%d error(s) occurred:\n", len(merrs))
	for i := 0; i < len(merrs); i++ {
		fmt.Fprintf(&msg, "\t* %+v\n", merrs[i])
	}
	return msg.String()
}
