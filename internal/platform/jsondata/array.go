package jsondata

import (
	"strconv"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// Array is a JSON array node with a forward cursor.
type Array struct {
	v    Value
	n    int
	next int
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.n }

// Location returns where the array starts.
func (a *Array) Location() Location { return a.v.Location() }

// At returns element i. The result does not exist when i is out of range.
func (a *Array) At(i int) Value {
	if i < 0 || i >= a.n {
		return Value{src: a.v.src, offset: a.v.offset, path: elementPath(a.v.path, i)}
	}
	return a.v.child(elementPath(a.v.path, i), strconv.Itoa(i))
}

// HasMore reports whether the cursor has elements left.
func (a *Array) HasMore() bool { return a.next < a.n }

// Next returns the element under the cursor and advances it.
func (a *Array) Next() (Value, error) {
	if !a.HasMore() {
		return Value{}, a.v.fail(apperrors.CodeInvalidField, "no more elements", "")
	}
	v := a.At(a.next)
	a.next++
	return v, nil
}

// NextObject returns the element under the cursor as an object and advances.
func (a *Array) NextObject() (*Object, error) {
	v, err := a.Next()
	if err != nil {
		return nil, err
	}
	return v.Object()
}

// Int returns element i as an integer.
func (a *Array) Int(i int) (int, error) {
	if i < 0 || i >= a.n {
		return 0, a.v.fail(apperrors.CodeInvalidField, "index "+strconv.Itoa(i)+" out of range", "")
	}
	return a.At(i).Int()
}

// Fail returns a fatal error tagged with the array location.
func (a *Array) Fail(message string) error {
	return a.v.fail(apperrors.CodeInvalidField, message, "")
}
