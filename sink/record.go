package sink

import (
	"encoding/json"
	"math"

	"github.com/go-sif/ola"
)

// Record is the serialized form of an Estimate, as written by StreamSink and AMQPSink.
// Values which are NaN are encoded as null.
type Record struct {
	Aggregator string        `json:"aggregator,omitempty"`
	Step       int           `json:"step"`
	Labels     []interface{} `json:"labels"`
	Values     []*float64    `json:"values"`
}

func createRecord(name string, step int, estimate ola.Estimate) *Record {
	values := make([]*float64, len(estimate.Values))
	for i, v := range estimate.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			val := v
			values[i] = &val
		}
	}
	labels := make([]interface{}, len(estimate.Labels))
	for i, l := range estimate.Labels {
		labels[i] = l
		switch f := l.(type) {
		case float64:
			if math.IsNaN(f) || math.IsInf(f, 0) {
				labels[i] = ola.FormatLabel(f)
			}
		case float32:
			if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
				labels[i] = ola.FormatLabel(f)
			}
		}
	}
	return &Record{Aggregator: name, Step: step, Labels: labels, Values: values}
}

// ToEstimate converts a Record back into an Estimate, with null values becoming NaN
func (r *Record) ToEstimate() ola.Estimate {
	values := make([]float64, len(r.Values))
	for i, v := range r.Values {
		if v == nil {
			values[i] = math.NaN()
		} else {
			values[i] = *v
		}
	}
	return ola.Estimate{Labels: r.Labels, Values: values}
}

func encodeRecord(name string, step int, estimate ola.Estimate) ([]byte, error) {
	return json.Marshal(createRecord(name, step, estimate))
}
