package ola

import (
	"fmt"
	"math"
	"strings"
)

// NoLabel is the label of the single element in the Estimate of a non-grouped Aggregator
const NoLabel = ""

// An Estimate is the current best-known answer of an Aggregator: an
// ordered pairing of group labels and the corresponding aggregate values.
// Labels are group keys (nil being the null group), listed in the order
// in which each group was first observed. Values may be NaN when an
// aggregate is undefined so far, such as the mean of zero observations.
type Estimate struct {
	Labels []interface{}
	Values []float64
}

// SingleEstimate produces the one-element Estimate of a non-grouped Aggregator
func SingleEstimate(value float64) Estimate {
	return Estimate{Labels: []interface{}{NoLabel}, Values: []float64{value}}
}

// Len returns the number of elements in this Estimate
func (e Estimate) Len() int {
	return len(e.Values)
}

// Lookup returns the value associated with a label, if present
func (e Estimate) Lookup(label interface{}) (float64, bool) {
	for i, l := range e.Labels {
		if l == label {
			return e.Values[i], true
		}
	}
	return math.NaN(), false
}

// LabelStrings renders the labels of this Estimate as strings, with the null group rendered as "null"
func (e Estimate) LabelStrings() []string {
	res := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		res[i] = FormatLabel(l)
	}
	return res
}

// Clone returns a deep copy of this Estimate
func (e Estimate) Clone() Estimate {
	labels := make([]interface{}, len(e.Labels))
	copy(labels, e.Labels)
	values := make([]float64, len(e.Values))
	copy(values, e.Values)
	return Estimate{Labels: labels, Values: values}
}

// ToString returns a string representation of this Estimate
func (e Estimate) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, l := range e.Labels {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%s: %g", FormatLabel(l), e.Values[i])
	}
	fmt.Fprint(&res, "]")
	return res.String()
}

// FormatLabel renders a single group label as a string
func FormatLabel(label interface{}) string {
	if label == nil {
		return "null"
	}
	if s, ok := label.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", label)
}
