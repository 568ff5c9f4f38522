package factory

import (
	"strings"
	"unicode"
)

// StringID names one record of type T. IDs of different record types are
// distinct Go types, so a class id cannot be passed where another kind of id
// is expected.
type StringID[T any] string

// String returns the underlying identifier.
func (id StringID[T]) String() string {
	return string(id)
}

// ValidID reports whether s can name a record: non-empty and free of
// whitespace.
func ValidID(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}
