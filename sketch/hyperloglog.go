package sketch

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/axiomhq/hyperloglog"
	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/ola"
)

const (
	// MinPrecision is the smallest supported number of register index bits
	MinPrecision = 4
	// MaxPrecision is the largest supported number of register index bits
	MaxPrecision = 18
	// DefaultPrecision yields a relative standard error of roughly 0.8%
	DefaultPrecision = 14
	// DefaultSeed is the hash seed used when none is configured
	DefaultSeed = 123456789
)

// HyperLogLog is a CardinalityEstimator backed by a HyperLogLog sketch
type HyperLogLog struct {
	precision uint8
	seed      [8]byte
	sketch    *hyperloglog.Sketch
}

var _ ola.CardinalityEstimator = (*HyperLogLog)(nil)

// CreateHyperLogLog returns a new, empty HyperLogLog with 2^precision registers. The
// seed selects the hash space, so that estimators with different seeds err independently.
func CreateHyperLogLog(precision uint8, seed uint64) (*HyperLogLog, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, fmt.Errorf("HyperLogLog precision must be between %d and %d, was %d", MinPrecision, MaxPrecision, precision)
	}
	sk, err := hyperloglog.NewSketch(precision, true)
	if err != nil {
		return nil, err
	}
	h := &HyperLogLog{precision: precision, sketch: sk}
	binary.LittleEndian.PutUint64(h.seed[:], seed)
	return h, nil
}

// Add adds a value to the observed set
func (h *HyperLogLog) Add(value string) {
	h.sketch.InsertHash(h.hash(value))
}

// Cardinality returns the approximate number of distinct values added so far
func (h *HyperLogLog) Cardinality() float64 {
	return float64(h.sketch.Estimate())
}

// Precision returns the number of register index bits of this HyperLogLog
func (h *HyperLogLog) Precision() uint8 {
	return h.precision
}

// RelativeError returns the relative standard error of this HyperLogLog's estimates
func (h *HyperLogLog) RelativeError() float64 {
	return RelativeError(h.precision)
}

func (h *HyperLogLog) hash(value string) uint64 {
	d := xxhash.New()
	d.Write(h.seed[:])
	d.WriteString(value)
	return d.Sum64()
}

// RelativeError returns the relative standard error of a HyperLogLog with the given precision
func RelativeError(precision uint8) float64 {
	return 1.04 / math.Sqrt(float64(uint64(1)<<precision))
}
