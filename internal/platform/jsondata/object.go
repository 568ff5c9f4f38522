package jsondata

import (
	"sort"

	"github.com/tidwall/gjson"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// Object is a JSON object node.
type Object struct {
	v Value
}

// Value returns the object as a generic value.
func (o *Object) Value() Value { return o.v }

// Location returns where the object starts.
func (o *Object) Location() Location { return o.v.Location() }

// Member returns the named member. The result does not exist when absent.
func (o *Object) Member(name string) Value {
	return o.v.child(memberPath(o.v.path, name), escapeKey(name))
}

// Has reports whether the named member is present.
func (o *Object) Has(name string) bool { return o.Member(name).Exists() }

// HasNumber reports whether the named member is a number.
func (o *Object) HasNumber(name string) bool { return o.Member(name).IsNumber() }

// HasString reports whether the named member is a string.
func (o *Object) HasString(name string) bool { return o.Member(name).IsString() }

// HasBool reports whether the named member is a boolean.
func (o *Object) HasBool(name string) bool { return o.Member(name).IsBool() }

// HasObject reports whether the named member is an object.
func (o *Object) HasObject(name string) bool { return o.Member(name).IsObject() }

// HasArray reports whether the named member is an array.
func (o *Object) HasArray(name string) bool { return o.Member(name).IsArray() }

// Keys returns the member names in sorted order.
func (o *Object) Keys() []string {
	var keys []string
	o.v.res.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	sort.Strings(keys)
	return keys
}

// Float reads a mandatory number member.
func (o *Object) Float(name string) (float64, error) {
	m, err := o.require(name)
	if err != nil {
		return 0, err
	}
	return m.Float()
}

// Int reads a mandatory integral member.
func (o *Object) Int(name string) (int, error) {
	m, err := o.require(name)
	if err != nil {
		return 0, err
	}
	return m.Int()
}

// String reads a mandatory string member.
func (o *Object) String(name string) (string, error) {
	m, err := o.require(name)
	if err != nil {
		return "", err
	}
	return m.Str()
}

// Bool reads a mandatory boolean member.
func (o *Object) Bool(name string) (bool, error) {
	m, err := o.require(name)
	if err != nil {
		return false, err
	}
	return m.Bool()
}

// Object reads a mandatory object member.
func (o *Object) Object(name string) (*Object, error) {
	m, err := o.require(name)
	if err != nil {
		return nil, err
	}
	return m.Object()
}

// Array reads a mandatory array member.
func (o *Object) Array(name string) (*Array, error) {
	m, err := o.require(name)
	if err != nil {
		return nil, err
	}
	return m.Array()
}

// Fail returns a fatal error tagged with the location of field, or of the
// object itself when field is empty or absent.
func (o *Object) Fail(message, field string) error {
	return o.FailCode(apperrors.CodeInvalidField, message, field)
}

// FailCode is Fail with an explicit error code.
func (o *Object) FailCode(code apperrors.Code, message, field string) error {
	at := o.v
	if field != "" {
		if m := o.Member(field); m.Exists() {
			at = m
		}
	}
	return at.fail(code, message, field)
}

func (o *Object) require(name string) (Value, error) {
	m := o.Member(name)
	if !m.Exists() {
		return Value{}, o.v.fail(apperrors.CodeMissingField, "missing mandatory member", name)
	}
	return m, nil
}
