package ola

// ColumnType is implemented to define a supported scalar column type.
// ola provides the built-in types in the columntype package.
type ColumnType interface {
	Name() string                                      // Name returns the name of this type, as used in schema definitions
	IsNumeric() bool                                   // IsNumeric returns true iff values of this type can be summed and averaged
	ToString(v interface{}) string                     // ToString produces a plain string representation of a (non-nil) value of this type
	Parse(s string) (interface{}, error)               // Parse produces a value of this type from its textual representation
	Coerce(v interface{}) (val interface{}, err error) // Coerce converts an arbitrary Go value into the canonical representation for this type
}
