package aggregators

import (
	"fmt"
	"strings"

	"github.com/go-sif/ola"
)

// Kind enumerates ola's built-in Aggregators
type Kind int

const (
	// AvgKind selects an Avg Aggregator
	AvgKind Kind = iota
	// FilteredAvgKind selects a FilteredAvg Aggregator
	FilteredAvgKind
	// GroupedAvgKind selects a GroupedAvg Aggregator
	GroupedAvgKind
	// GroupedSumKind selects a GroupedSum Aggregator
	GroupedSumKind
	// GroupedCountKind selects a GroupedCount Aggregator
	GroupedCountKind
	// FilteredDistinctKind selects a FilteredDistinct Aggregator
	FilteredDistinctKind
)

var kindNames = []string{"avg", "filter-avg", "group-avg", "group-sum", "group-count", "filter-distinct"}

// String returns the name of this Kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsScaled returns true iff Aggregators of this Kind require a total row count
func (k Kind) IsScaled() bool {
	return k == GroupedSumKind || k == GroupedCountKind
}

// ParseKind translates the name of an Aggregator Kind into a Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return AvgKind, fmt.Errorf("Unknown aggregator %s, expected one of %s", name, strings.Join(kindNames, ", "))
}

// Create returns a new Aggregator of the given Kind
func Create(kind Kind, sink ola.Sink, conf *Conf) (ola.Aggregator, error) {
	switch kind {
	case AvgKind:
		return checked(CreateAvg(sink, conf))
	case FilteredAvgKind:
		return checked(CreateFilteredAvg(sink, conf))
	case GroupedAvgKind:
		return checked(CreateGroupedAvg(sink, conf))
	case GroupedSumKind:
		return checked(CreateGroupedSum(sink, conf))
	case GroupedCountKind:
		return checked(CreateGroupedCount(sink, conf))
	case FilteredDistinctKind:
		return checked(CreateFilteredDistinct(sink, conf))
	default:
		return nil, fmt.Errorf("Unknown aggregator %s", kind)
	}
}

// checked avoids returning a non-nil Aggregator interface holding a nil pointer
func checked(agg ola.Aggregator, err error) (ola.Aggregator, error) {
	if err != nil {
		return nil, err
	}
	return agg, nil
}
