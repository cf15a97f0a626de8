// Package columntype contains the built-in scalar ColumnTypes which may appear in an ola Schema.
package columntype
