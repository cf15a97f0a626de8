package errors

import (
	"fmt"
)

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// MissingColumnError occurs when a column is referenced which does not exist in a Schema
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column %s", e.Name)
}

// ValueTypeError occurs when a column value cannot be used in the requested role, such as summing a string
type ValueTypeError struct {
	Name     string
	Value    interface{}
	Expected string
}

// Error returns a textual representation of this ValueTypeError
func (e ValueTypeError) Error() string {
	return fmt.Sprintf("Value %#v for column %s is not a %s", e.Value, e.Name, e.Expected)
}

// ConfigurationError occurs when an Aggregator is configured in a way which cannot
// produce an answer, such as referencing an absent column or omitting the total row
// count of a scale-corrected Aggregator. It is fatal for the Aggregator.
type ConfigurationError struct {
	Aggregator string
	Reason     string
	Err        error
}

// Error returns a textual representation of this ConfigurationError
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is misconfigured: %s: %v", e.Aggregator, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s is misconfigured: %s", e.Aggregator, e.Reason)
}

// Unwrap returns the underlying cause of this ConfigurationError, if any
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NoMoreSlicesError occurs when there are no more Slices in a SliceIterator
type NoMoreSlicesError struct{}

// Error returns a textual representation of this NoMoreSlicesError
func (e NoMoreSlicesError) Error() string {
	return "No more slices"
}

// SliceFullError occurs when a Slice has reached its max size and a new Row insertion is attempted
type SliceFullError struct{}

// Error returns a textual representation of this SliceFullError
func (e SliceFullError) Error() string {
	return "Slice is full"
}
